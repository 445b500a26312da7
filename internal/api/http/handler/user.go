package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/raydent/raydent_backend/internal/service/user"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, user.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrClientRequired),
		errors.Is(err, user.ErrInvalidSoftware),
		errors.Is(err, user.ErrSelfDelete):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	return ok(c, u)
}

// GET /users?role=
func (h *UserHandler) List(c fiber.Ctx) error {
	req := user.ListRequest{}
	if role := c.Query("role"); role != "" {
		req.Role = &role
	}

	users, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, users)
}

// GET /users/:id
func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// POST /users/:id/approve
func (h *UserHandler) Approve(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Role      string   `json:"role"`
		ClientID  string   `json:"client_id"`
		Softwares []string `json:"softwares"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := user.ApproveRequest{Role: body.Role, Softwares: body.Softwares}
	if body.ClientID != "" {
		cid, err := uuid.Parse(body.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &cid
	}

	u, err := h.svc.Approve(c.Context(), id, req)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /users/:id
func (h *UserHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	var body struct {
		Name      *string  `json:"name"`
		Softwares []string `json:"softwares"`
		IsActive  *bool    `json:"is_active"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), id, user.UpdateRequest{
		Name:      body.Name,
		Softwares: body.Softwares,
		IsActive:  body.IsActive,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// POST /users/radiologists  (admin only)
func (h *UserHandler) CreateRadiologist(c fiber.Ctx) error {
	var body struct {
		Name      string   `json:"name"`
		Email     string   `json:"email"`
		Password  string   `json:"password"`
		Softwares []string `json:"softwares"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.CreateRadiologist(c.Context(), user.CreateRadiologistRequest{
		Name:      body.Name,
		Email:     body.Email,
		Password:  body.Password,
		Softwares: body.Softwares,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return created(c, u)
}

// DELETE /users/:id  (admin only)
func (h *UserHandler) Delete(c fiber.Ctx) error {
	actor, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.Delete(c.Context(), actor.ID, id); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}
