package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/raydent/raydent_backend/internal/service/exam"
)

type ExamHandler struct {
	svc exam.Service
}

func NewExamHandler(svc exam.Service) *ExamHandler {
	return &ExamHandler{svc: svc}
}

func mapExamError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, exam.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, exam.ErrStatusConflict),
		errors.Is(err, exam.ErrTerminalStatus):
		return conflict(c, err.Error())
	case errors.Is(err, exam.ErrSoftwareIncompatible),
		errors.Is(err, exam.ErrUrgentDueRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, exam.ErrNotRadiologist),
		errors.Is(err, exam.ErrForbidden):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /exams
func (h *ExamHandler) Create(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ClientID         string  `json:"client_id"`
		ExamTypeID       string  `json:"exam_type_id"`
		PatientName      string  `json:"patient_name"`
		PatientBirthDate *string `json:"patient_birth_date"`
		Software         string  `json:"software"`
		Urgent           bool    `json:"urgent"`
		UrgentDue        *string `json:"urgent_due"`
		Observations     *string `json:"observations"`
		DentistName      *string `json:"dentist_name"`
		Purpose          *string `json:"purpose"`
		ExamDate         *string `json:"exam_date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientName == "" {
		return badRequest(c, "patient_name is required")
	}

	req := exam.CreateRequest{
		PatientName:      body.PatientName,
		PatientBirthDate: body.PatientBirthDate,
		Software:         body.Software,
		Urgent:           body.Urgent,
		Observations:     body.Observations,
		DentistName:      body.DentistName,
		Purpose:          body.Purpose,
		ExamDate:         body.ExamDate,
	}
	if body.ClientID != "" {
		id, err := uuid.Parse(body.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = id
	}
	if body.ExamTypeID != "" {
		id, err := uuid.Parse(body.ExamTypeID)
		if err != nil {
			return badRequest(c, "invalid exam_type_id")
		}
		req.ExamTypeID = id
	} else {
		return badRequest(c, "exam_type_id is required")
	}
	if body.UrgentDue != nil {
		t, err := time.Parse(time.RFC3339, *body.UrgentDue)
		if err != nil {
			return badRequest(c, "invalid urgent_due")
		}
		req.UrgentDue = &t
	}

	e, err := h.svc.Create(c.Context(), u, req)
	if err != nil {
		return mapExamError(c, err)
	}
	return created(c, e)
}

// GET /exams
func (h *ExamHandler) List(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Status        string `query:"status"`
		ClientID      string `query:"client_id"`
		RadiologistID string `query:"radiologist_id"`
		ExamTypeID    string `query:"exam_type_id"`
		Month         string `query:"month"` // YYYY-MM
		From          string `query:"from"`
		To            string `query:"to"`
		Page          int    `query:"page"`
		PerPage       int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := exam.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}
	if q.RadiologistID != "" {
		id, err := uuid.Parse(q.RadiologistID)
		if err != nil {
			return badRequest(c, "invalid radiologist_id")
		}
		req.RadiologistID = &id
	}
	if q.ExamTypeID != "" {
		id, err := uuid.Parse(q.ExamTypeID)
		if err != nil {
			return badRequest(c, "invalid exam_type_id")
		}
		req.ExamTypeID = &id
	}
	if q.Month != "" {
		m, err := time.Parse("2006-01", q.Month)
		if err != nil {
			return badRequest(c, "invalid month, expected YYYY-MM")
		}
		from := m
		to := m.AddDate(0, 1, 0)
		req.From, req.To = &from, &to
	}
	if q.From != "" {
		if t, err := time.Parse(time.RFC3339, q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := time.Parse(time.RFC3339, q.To); err == nil {
			req.To = &t
		}
	}

	exams, err := h.svc.List(c.Context(), u, req)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, exams)
}

// GET /exams/available
func (h *ExamHandler) ListAvailable(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	exams, err := h.svc.ListAvailable(c.Context(), u)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, exams)
}

// GET /exams/:id
func (h *ExamHandler) Get(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	e, err := h.svc.Get(c.Context(), u, id)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, e)
}

// GET /exams/:id/history
func (h *ExamHandler) History(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	// Access follows the same rule as reading the exam itself.
	if _, err := h.svc.Get(c.Context(), u, id); err != nil {
		return mapExamError(c, err)
	}

	events, err := h.svc.History(c.Context(), id)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, events)
}

// POST /exams/:id/claim
func (h *ExamHandler) Claim(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	e, err := h.svc.Claim(c.Context(), u, id)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, e)
}

// POST /exams/:id/finalize
func (h *ExamHandler) Finalize(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	var body struct {
		ReportFileKey *string `json:"report_file_key"`
	}
	_ = c.Bind().JSON(&body)

	e, err := h.svc.Finalize(c.Context(), u, id, body.ReportFileKey)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, e)
}

// POST /exams/:id/cancel
func (h *ExamHandler) Cancel(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	// Clinic users may only cancel their own submissions.
	if _, err := h.svc.Get(c.Context(), u, id); err != nil {
		return mapExamError(c, err)
	}

	e, err := h.svc.Cancel(c.Context(), u, id)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, e)
}

// POST /exams/:id/reassign  (admin only)
func (h *ExamHandler) Reassign(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exam id")
	}

	var body struct {
		RadiologistID string `json:"radiologist_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	radID, err := uuid.Parse(body.RadiologistID)
	if err != nil {
		return badRequest(c, "invalid radiologist_id")
	}

	e, err := h.svc.Reassign(c.Context(), u.ID, id, radID)
	if err != nil {
		return mapExamError(c, err)
	}
	return ok(c, e)
}
