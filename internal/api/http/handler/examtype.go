package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/service/examtype"
)

type ExamTypeHandler struct {
	svc examtype.Service
}

func NewExamTypeHandler(svc examtype.Service) *ExamTypeHandler {
	return &ExamTypeHandler{svc: svc}
}

func mapExamTypeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, examtype.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, examtype.ErrNameExists),
		errors.Is(err, examtype.ErrInUse):
		return conflict(c, err.Error())
	case errors.Is(err, examtype.ErrNameRequired):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /exam-types
func (h *ExamTypeHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	et, err := h.svc.Create(c.Context(), body.Name)
	if err != nil {
		return mapExamTypeError(c, err)
	}
	return created(c, et)
}

// GET /exam-types
func (h *ExamTypeHandler) List(c fiber.Ctx) error {
	types, err := h.svc.List(c.Context())
	if err != nil {
		return mapExamTypeError(c, err)
	}
	return ok(c, types)
}

// PATCH /exam-types/:id
func (h *ExamTypeHandler) Rename(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam type id")
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	et, err := h.svc.Rename(c.Context(), id, body.Name)
	if err != nil {
		return mapExamTypeError(c, err)
	}
	return ok(c, et)
}

// DELETE /exam-types/:id
func (h *ExamTypeHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam type id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapExamTypeError(c, err)
	}
	return noContent(c)
}
