package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/raydent/raydent_backend/internal/service/exam"
	"github.com/raydent/raydent_backend/internal/service/file"
)

type FileHandler struct {
	svc file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

func mapFileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, exam.ErrNotFound), errors.Is(err, file.ErrNoFile):
		return notFound(c, err.Error())
	case errors.Is(err, file.ErrNotAssigned),
		errors.Is(err, file.ErrAccessDenied),
		errors.Is(err, exam.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /exams/:id/source  (multipart, field "file")
func (h *FileHandler) UploadSource(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing file")
	}

	res, err := h.svc.UploadSource(c.Context(), u, examID, fh)
	if err != nil {
		return mapFileError(c, err)
	}
	return created(c, res)
}

// POST /exams/:id/report  (multipart, field "file")
func (h *FileHandler) UploadReport(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "missing file")
	}

	res, err := h.svc.UploadReport(c.Context(), u, examID, fh)
	if err != nil {
		return mapFileError(c, err)
	}
	return created(c, res)
}

// GET /exams/:id/source/download
func (h *FileHandler) SourceDownloadURL(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	url, err := h.svc.SourceDownloadURL(c.Context(), u, examID)
	if err != nil {
		return mapFileError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}

// GET /exams/:id/report/download
func (h *FileHandler) ReportDownloadURL(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	url, err := h.svc.ReportDownloadURL(c.Context(), u, examID)
	if err != nil {
		return mapFileError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}
