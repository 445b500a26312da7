package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/service/clinic"
)

type ClinicHandler struct {
	svc clinic.Service
}

func NewClinicHandler(svc clinic.Service) *ClinicHandler {
	return &ClinicHandler{svc: svc}
}

func mapClinicError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, clinic.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, clinic.ErrTaxIDExists),
		errors.Is(err, clinic.ErrHasExams):
		return conflict(c, err.Error())
	case errors.Is(err, clinic.ErrNameRequired),
		errors.Is(err, clinic.ErrInvalidTaxID),
		errors.Is(err, clinic.ErrInvalidEmail):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /clients
func (h *ClinicHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name      string   `json:"name"`
		TaxID     string   `json:"tax_id"`
		Email     string   `json:"email"`
		Phone     string   `json:"phone"`
		Softwares []string `json:"softwares"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Create(c.Context(), clinic.CreateRequest{
		Name:      body.Name,
		TaxID:     body.TaxID,
		Email:     body.Email,
		Phone:     body.Phone,
		Softwares: body.Softwares,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return created(c, cl)
}

// GET /clients?active=
func (h *ClinicHandler) List(c fiber.Ctx) error {
	req := clinic.ListRequest{}
	switch c.Query("active") {
	case "true":
		t := true
		req.Active = &t
	case "false":
		f := false
		req.Active = &f
	}

	clinics, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, clinics)
}

// GET /clients/:id
func (h *ClinicHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	cl, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// PATCH /clients/:id
func (h *ClinicHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		Name      *string  `json:"name"`
		TaxID     *string  `json:"tax_id"`
		Email     *string  `json:"email"`
		Phone     *string  `json:"phone"`
		IsActive  *bool    `json:"is_active"`
		Softwares []string `json:"softwares"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	cl, err := h.svc.Update(c.Context(), id, clinic.UpdateRequest{
		Name:      body.Name,
		TaxID:     body.TaxID,
		Email:     body.Email,
		Phone:     body.Phone,
		IsActive:  body.IsActive,
		Softwares: body.Softwares,
	})
	if err != nil {
		return mapClinicError(c, err)
	}
	return ok(c, cl)
}

// DELETE /clients/:id
func (h *ClinicHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapClinicError(c, err)
	}
	return noContent(c)
}
