package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/api/http/middleware"
	"github.com/raydent/raydent_backend/internal/service/calendar"
)

type CalendarHandler struct {
	svc calendar.Service
}

func NewCalendarHandler(svc calendar.Service) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

func mapCalendarError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, calendar.ErrMeetingNotFound),
		errors.Is(err, calendar.ErrVacationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, calendar.ErrTitleRequired),
		errors.Is(err, calendar.ErrInvalidRange):
		return badRequest(c, err.Error())
	case errors.Is(err, calendar.ErrNotOwner):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

func parseMeetingBody(c fiber.Ctx) (calendar.MeetingRequest, error) {
	var body struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		StartsAt     string   `json:"starts_at"`
		EndsAt       string   `json:"ends_at"`
		Participants []string `json:"participants"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return calendar.MeetingRequest{}, errors.New("invalid request body")
	}

	starts, err := time.Parse(time.RFC3339, body.StartsAt)
	if err != nil {
		return calendar.MeetingRequest{}, errors.New("invalid starts_at")
	}
	ends, err := time.Parse(time.RFC3339, body.EndsAt)
	if err != nil {
		return calendar.MeetingRequest{}, errors.New("invalid ends_at")
	}

	participants := make([]uuid.UUID, 0, len(body.Participants))
	for _, p := range body.Participants {
		id, err := uuid.Parse(p)
		if err != nil {
			return calendar.MeetingRequest{}, errors.New("invalid participant id")
		}
		participants = append(participants, id)
	}

	return calendar.MeetingRequest{
		Title:        body.Title,
		Description:  body.Description,
		StartsAt:     starts,
		EndsAt:       ends,
		Participants: participants,
	}, nil
}

// rangeParams parses ?from=&to= (RFC 3339), defaulting to the next 30
// days.
func rangeParams(c fiber.Ctx) (time.Time, time.Time) {
	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 30)
	if s := c.Query("from"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			from = t
		}
	}
	if s := c.Query("to"); s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			to = t
		}
	}
	return from, to
}

// POST /calendar/meetings
func (h *CalendarHandler) CreateMeeting(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	req, err := parseMeetingBody(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	m, err := h.svc.CreateMeeting(c.Context(), u.ID, req)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return created(c, m)
}

// GET /calendar/meetings?from=&to=
func (h *CalendarHandler) ListMeetings(c fiber.Ctx) error {
	from, to := rangeParams(c)
	meetings, err := h.svc.ListMeetings(c.Context(), from, to)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, meetings)
}

// GET /calendar/meetings/:id
func (h *CalendarHandler) GetMeeting(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid meeting id")
	}

	m, err := h.svc.GetMeeting(c.Context(), id)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, m)
}

// PUT /calendar/meetings/:id
func (h *CalendarHandler) UpdateMeeting(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid meeting id")
	}

	req, err := parseMeetingBody(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	m, err := h.svc.UpdateMeeting(c.Context(), u, id, req)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, m)
}

// DELETE /calendar/meetings/:id
func (h *CalendarHandler) DeleteMeeting(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid meeting id")
	}

	if err := h.svc.DeleteMeeting(c.Context(), u, id); err != nil {
		return mapCalendarError(c, err)
	}
	return noContent(c)
}

// POST /calendar/vacations
func (h *CalendarHandler) CreateVacation(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Note      string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	start, err := time.Parse(time.RFC3339, body.StartDate)
	if err != nil {
		return badRequest(c, "invalid start_date")
	}
	end, err := time.Parse(time.RFC3339, body.EndDate)
	if err != nil {
		return badRequest(c, "invalid end_date")
	}

	v, err := h.svc.CreateVacation(c.Context(), u.ID, calendar.VacationRequest{
		StartDate: start,
		EndDate:   end,
		Note:      body.Note,
	})
	if err != nil {
		return mapCalendarError(c, err)
	}
	return created(c, v)
}

// GET /calendar/vacations?from=&to=
func (h *CalendarHandler) ListVacations(c fiber.Ctx) error {
	from, to := rangeParams(c)
	vacations, err := h.svc.ListVacations(c.Context(), from, to)
	if err != nil {
		return mapCalendarError(c, err)
	}
	return ok(c, vacations)
}

// DELETE /calendar/vacations/:id
func (h *CalendarHandler) DeleteVacation(c fiber.Ctx) error {
	u, valid := middleware.UserFromLocals(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid vacation id")
	}

	if err := h.svc.DeleteVacation(c.Context(), u, id); err != nil {
		return mapCalendarError(c, err)
	}
	return noContent(c)
}
