package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/raydent/raydent_backend/internal/service/report"
)

type ReportHandler struct {
	svc report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// monthParam parses the ?month=YYYY-MM query, defaulting to the current
// month.
func monthParam(c fiber.Ctx) (time.Time, bool) {
	s := c.Query("month")
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	}
	m, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, false
	}
	return m, true
}

// GET /reports/dashboard?month=YYYY-MM
func (h *ReportHandler) Dashboard(c fiber.Ctx) error {
	month, valid := monthParam(c)
	if !valid {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	rep, err := h.svc.Dashboard(c.Context(), month)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rep)
}

// GET /reports/radiologists?month=YYYY-MM
func (h *ReportHandler) PerRadiologist(c fiber.Ctx) error {
	month, valid := monthParam(c)
	if !valid {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	rows, err := h.svc.PerRadiologist(c.Context(), month)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}

// GET /reports/me?month=YYYY-MM
//
// The caller only ever sees their own row, so no dashboard permission
// is required beyond authentication.
func (h *ReportHandler) MyFinancials(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	month, valid := monthParam(c)
	if !valid {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	row, err := h.svc.ForRadiologist(c.Context(), u.ID, month)
	if err != nil {
		return internalError(c)
	}
	return ok(c, row)
}

// GET /reports/clients?month=YYYY-MM
func (h *ReportHandler) PerClient(c fiber.Ctx) error {
	month, valid := monthParam(c)
	if !valid {
		return badRequest(c, "invalid month, expected YYYY-MM")
	}

	rows, err := h.svc.PerClient(c.Context(), month)
	if err != nil {
		return internalError(c)
	}
	return ok(c, rows)
}
