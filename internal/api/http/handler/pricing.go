package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/service/pricing"
)

type PricingHandler struct {
	svc pricing.Service
}

func NewPricingHandler(svc pricing.Service) *PricingHandler {
	return &PricingHandler{svc: svc}
}

func mapPricingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, pricing.ErrPriceNotFound),
		errors.Is(err, pricing.ErrEntryNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, pricing.ErrInvalidValue):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /prices/clients?client_id=
func (h *PricingHandler) ListClientPrices(c fiber.Ctx) error {
	var clientID *uuid.UUID
	if s := c.Query("client_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		clientID = &id
	}

	prices, err := h.svc.ListClientPrices(c.Context(), clientID)
	if err != nil {
		return mapPricingError(c, err)
	}
	return ok(c, prices)
}

// PUT /prices/clients
func (h *PricingHandler) UpsertClientPrice(c fiber.Ctx) error {
	var body struct {
		ClientID   string `json:"client_id"`
		ExamTypeID string `json:"exam_type_id"`
		Value      int64  `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}
	examTypeID, err := uuid.Parse(body.ExamTypeID)
	if err != nil {
		return badRequest(c, "invalid exam_type_id")
	}

	p, err := h.svc.UpsertClientPrice(c.Context(), pricing.UpsertClientPriceRequest{
		ClientID:    clientID,
		ExamTypeID:  examTypeID,
		ClientValue: body.Value,
	})
	if err != nil {
		return mapPricingError(c, err)
	}
	return ok(c, p)
}

// DELETE /prices/clients/:id
func (h *PricingHandler) DeleteClientPrice(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid price entry id")
	}
	if err := h.svc.DeleteClientPrice(c.Context(), id); err != nil {
		return mapPricingError(c, err)
	}
	return noContent(c)
}

// GET /prices/radiologists?radiologist_id=
func (h *PricingHandler) ListRadiologistPrices(c fiber.Ctx) error {
	var radiologistID *uuid.UUID
	if s := c.Query("radiologist_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid radiologist_id")
		}
		radiologistID = &id
	}

	prices, err := h.svc.ListRadiologistPrices(c.Context(), radiologistID)
	if err != nil {
		return mapPricingError(c, err)
	}
	return ok(c, prices)
}

// PUT /prices/radiologists
func (h *PricingHandler) UpsertRadiologistPrice(c fiber.Ctx) error {
	var body struct {
		ClientID      string `json:"client_id"`
		ExamTypeID    string `json:"exam_type_id"`
		RadiologistID string `json:"radiologist_id"`
		Value         int64  `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}
	examTypeID, err := uuid.Parse(body.ExamTypeID)
	if err != nil {
		return badRequest(c, "invalid exam_type_id")
	}
	radiologistID, err := uuid.Parse(body.RadiologistID)
	if err != nil {
		return badRequest(c, "invalid radiologist_id")
	}

	p, err := h.svc.UpsertRadiologistPrice(c.Context(), pricing.UpsertRadiologistPriceRequest{
		ClientID:         clientID,
		ExamTypeID:       examTypeID,
		RadiologistID:    radiologistID,
		RadiologistValue: body.Value,
	})
	if err != nil {
		return mapPricingError(c, err)
	}
	return ok(c, p)
}

// DELETE /prices/radiologists/:id
func (h *PricingHandler) DeleteRadiologistPrice(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid price entry id")
	}
	if err := h.svc.DeleteRadiologistPrice(c.Context(), id); err != nil {
		return mapPricingError(c, err)
	}
	return noContent(c)
}
