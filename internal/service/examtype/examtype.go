// Package examtype manages the catalog of orderable exam types.
package examtype

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/repo"
	entcp "github.com/raydent/raydent_backend/internal/repo/clientprice"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entet "github.com/raydent/raydent_backend/internal/repo/examtype"
	entrp "github.com/raydent/raydent_backend/internal/repo/radiologistprice"
	"github.com/raydent/raydent_backend/pkg/database"
)

var (
	ErrNotFound     = errors.New("exam type not found")
	ErrNameRequired = errors.New("exam type name is required")
	ErrNameExists   = errors.New("an exam type with this name already exists")
	ErrInUse        = errors.New("exam type has exams on record and cannot be removed")
)

type Service interface {
	Create(ctx context.Context, name string) (*repo.ExamType, error)
	Get(ctx context.Context, id uuid.UUID) (*repo.ExamType, error)
	List(ctx context.Context) ([]*repo.ExamType, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*repo.ExamType, error)

	// Delete removes the type and its price table entries. Types already
	// referenced by exams are kept for history.
	Delete(ctx context.Context, id uuid.UUID) error
}

type examTypeService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &examTypeService{db: db}
}

func (s *examTypeService) Create(ctx context.Context, name string) (*repo.ExamType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.db.ExamType.Query().Where(entet.Name(name)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check exam type name: %w", err)
	}
	if exists {
		return nil, ErrNameExists
	}

	et, err := s.db.ExamType.Create().SetName(name).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create exam type: %w", err)
	}
	return et, nil
}

func (s *examTypeService) Get(ctx context.Context, id uuid.UUID) (*repo.ExamType, error) {
	et, err := s.db.ExamType.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get exam type: %w", err)
	}
	return et, nil
}

func (s *examTypeService) List(ctx context.Context) ([]*repo.ExamType, error) {
	types, err := s.db.ExamType.Query().Order(entet.ByName()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exam types: %w", err)
	}
	return types, nil
}

func (s *examTypeService) Rename(ctx context.Context, id uuid.UUID, name string) (*repo.ExamType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	et, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.db.ExamType.Query().
		Where(entet.Name(name), entet.IDNEQ(id)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check exam type name: %w", err)
	}
	if taken {
		return nil, ErrNameExists
	}

	updated, err := s.db.ExamType.UpdateOne(et).SetName(name).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("rename exam type: %w", err)
	}
	return updated, nil
}

func (s *examTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	inUse, err := s.db.Exam.Query().Where(entexam.ExamTypeID(id)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check exams: %w", err)
	}
	if inUse {
		return ErrInUse
	}

	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.ClientPrice.Delete().
			Where(entcp.ExamTypeID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete client prices: %w", err)
		}
		if _, err := tx.RadiologistPrice.Delete().
			Where(entrp.ExamTypeID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete radiologist prices: %w", err)
		}
		if err := tx.ExamType.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete exam type: %w", err)
		}
		return nil
	})
}
