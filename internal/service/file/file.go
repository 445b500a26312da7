// Package file stores exam source volumes and finalized reports in S3.
package file

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/repo"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/service/exam"
	s3pkg "github.com/raydent/raydent_backend/pkg/s3"
)

var (
	ErrNoFile       = errors.New("exam has no such file")
	ErrNotAssigned  = errors.New("exam is not assigned to you")
	ErrAccessDenied = errors.New("access denied")
)

type UploadResult struct {
	Key      string
	FileName string
	Size     int64
	MimeType string
}

type Service interface {
	// UploadSource stores the raw exam volume and records its key on the
	// exam row.
	UploadSource(ctx context.Context, actor *repo.User, examID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)

	// UploadReport stores a finalized report file. The returned key is
	// passed to the finalize operation.
	UploadReport(ctx context.Context, radiologist *repo.User, examID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error)

	SourceDownloadURL(ctx context.Context, actor *repo.User, examID uuid.UUID) (string, error)
	ReportDownloadURL(ctx context.Context, actor *repo.User, examID uuid.UUID) (string, error)

	DeleteObject(ctx context.Context, key string) error
}

type fileService struct {
	db    *repo.Client
	s3    *s3pkg.Client
	exams exam.Service
}

func New(db *repo.Client, s3Client *s3pkg.Client, exams exam.Service) Service {
	return &fileService{db: db, s3: s3Client, exams: exams}
}

func (s *fileService) UploadSource(ctx context.Context, actor *repo.User, examID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	e, err := s.exams.Get(ctx, actor, examID)
	if err != nil {
		return nil, err
	}

	res, err := s.upload(ctx, e, "source", fh)
	if err != nil {
		return nil, err
	}
	if err := s.exams.AttachSourceFile(ctx, actor, examID, res.Key); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *fileService) UploadReport(ctx context.Context, radiologist *repo.User, examID uuid.UUID, fh *multipart.FileHeader) (*UploadResult, error) {
	e, err := s.exams.Get(ctx, radiologist, examID)
	if err != nil {
		return nil, err
	}
	if e.RadiologistID == nil || *e.RadiologistID != radiologist.ID {
		return nil, ErrNotAssigned
	}

	return s.upload(ctx, e, "report", fh)
}

func (s *fileService) SourceDownloadURL(ctx context.Context, actor *repo.User, examID uuid.UUID) (string, error) {
	e, err := s.exams.Get(ctx, actor, examID)
	if err != nil {
		return "", err
	}
	if e.SourceFileKey == nil {
		return "", ErrNoFile
	}
	return s.presign(ctx, *e.SourceFileKey)
}

func (s *fileService) ReportDownloadURL(ctx context.Context, actor *repo.User, examID uuid.UUID) (string, error) {
	e, err := s.exams.Get(ctx, actor, examID)
	if err != nil {
		return "", err
	}
	// The report is only visible once the exam reaches its final state.
	if actor.Role != entuser.RoleAdmin && e.Status != entexam.StatusFinalized {
		return "", ErrAccessDenied
	}
	if e.ReportFileKey == nil {
		return "", ErrNoFile
	}
	return s.presign(ctx, *e.ReportFileKey)
}

func (s *fileService) DeleteObject(ctx context.Context, key string) error {
	return s.s3.Delete(ctx, key)
}

func (s *fileService) upload(ctx context.Context, e *repo.Exam, kind string, fh *multipart.FileHeader) (*UploadResult, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("exams/%s/%s/%s/%s%s", e.ClientID, e.ID, kind, uuid.New(), ext)

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	if err := s.s3.Upload(ctx, key, mime, src, fh.Size); err != nil {
		return nil, fmt.Errorf("s3 upload: %w", err)
	}

	return &UploadResult{
		Key:      key,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

func (s *fileService) presign(ctx context.Context, key string) (string, error) {
	url, err := s.s3.PresignDownload(ctx, key)
	if err != nil {
		return "", fmt.Errorf("presign: %w", err)
	}
	return url, nil
}
