// Package calendar covers internal team meetings and radiologist
// vacations.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/repo"
	entmeeting "github.com/raydent/raydent_backend/internal/repo/meeting"
	entmp "github.com/raydent/raydent_backend/internal/repo/meetingparticipant"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	entvacation "github.com/raydent/raydent_backend/internal/repo/vacation"
	"github.com/raydent/raydent_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type MeetingRequest struct {
	Title        string
	Description  string
	StartsAt     time.Time
	EndsAt       time.Time
	Participants []uuid.UUID
}

type MeetingWithParticipants struct {
	Meeting      *repo.Meeting
	Participants []uuid.UUID
}

type VacationRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Note      string
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

type Service interface {
	CreateMeeting(ctx context.Context, createdBy uuid.UUID, req MeetingRequest) (*MeetingWithParticipants, error)
	GetMeeting(ctx context.Context, id uuid.UUID) (*MeetingWithParticipants, error)
	ListMeetings(ctx context.Context, from, to time.Time) ([]*MeetingWithParticipants, error)

	// UpdateMeeting replaces the participant set wholesale along with the
	// meeting fields, in one transaction.
	UpdateMeeting(ctx context.Context, actor *repo.User, id uuid.UUID, req MeetingRequest) (*MeetingWithParticipants, error)
	DeleteMeeting(ctx context.Context, actor *repo.User, id uuid.UUID) error

	CreateVacation(ctx context.Context, userID uuid.UUID, req VacationRequest) (*repo.Vacation, error)
	ListVacations(ctx context.Context, from, to time.Time) ([]*repo.Vacation, error)
	DeleteVacation(ctx context.Context, actor *repo.User, id uuid.UUID) error
}

type calendarService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &calendarService{db: db}
}

// ---------------------------------------------------------------------------
// Meetings
// ---------------------------------------------------------------------------

func (s *calendarService) CreateMeeting(ctx context.Context, createdBy uuid.UUID, req MeetingRequest) (*MeetingWithParticipants, error) {
	if err := validateMeeting(req); err != nil {
		return nil, err
	}

	var out *MeetingWithParticipants
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		m, err := tx.Meeting.Create().
			SetTitle(strings.TrimSpace(req.Title)).
			SetDescription(req.Description).
			SetStartsAt(req.StartsAt).
			SetEndsAt(req.EndsAt).
			SetCreatedBy(createdBy).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create meeting: %w", err)
		}
		if err := createParticipants(ctx, tx, m.ID, req.Participants); err != nil {
			return err
		}
		out = &MeetingWithParticipants{Meeting: m, Participants: req.Participants}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *calendarService) GetMeeting(ctx context.Context, id uuid.UUID) (*MeetingWithParticipants, error) {
	m, err := s.db.Meeting.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}

	ids, err := s.participantIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return &MeetingWithParticipants{Meeting: m, Participants: ids}, nil
}

func (s *calendarService) ListMeetings(ctx context.Context, from, to time.Time) ([]*MeetingWithParticipants, error) {
	meetings, err := s.db.Meeting.Query().
		Where(entmeeting.StartsAtGTE(from), entmeeting.StartsAtLT(to)).
		Order(entmeeting.ByStartsAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}

	out := make([]*MeetingWithParticipants, 0, len(meetings))
	for _, m := range meetings {
		ids, err := s.participantIDs(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &MeetingWithParticipants{Meeting: m, Participants: ids})
	}
	return out, nil
}

func (s *calendarService) UpdateMeeting(ctx context.Context, actor *repo.User, id uuid.UUID, req MeetingRequest) (*MeetingWithParticipants, error) {
	if err := validateMeeting(req); err != nil {
		return nil, err
	}

	m, err := s.db.Meeting.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrMeetingNotFound
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if actor.Role != entuser.RoleAdmin && m.CreatedBy != actor.ID {
		return nil, ErrNotOwner
	}

	var out *MeetingWithParticipants
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		updated, err := tx.Meeting.UpdateOneID(id).
			SetTitle(strings.TrimSpace(req.Title)).
			SetDescription(req.Description).
			SetStartsAt(req.StartsAt).
			SetEndsAt(req.EndsAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update meeting: %w", err)
		}
		if _, err := tx.MeetingParticipant.Delete().
			Where(entmp.MeetingID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("clear participants: %w", err)
		}
		if err := createParticipants(ctx, tx, id, req.Participants); err != nil {
			return err
		}
		out = &MeetingWithParticipants{Meeting: updated, Participants: req.Participants}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *calendarService) DeleteMeeting(ctx context.Context, actor *repo.User, id uuid.UUID) error {
	m, err := s.db.Meeting.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrMeetingNotFound
		}
		return fmt.Errorf("get meeting: %w", err)
	}
	if actor.Role != entuser.RoleAdmin && m.CreatedBy != actor.ID {
		return ErrNotOwner
	}

	return database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		if _, err := tx.MeetingParticipant.Delete().
			Where(entmp.MeetingID(id)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete participants: %w", err)
		}
		if err := tx.Meeting.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete meeting: %w", err)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Vacations
// ---------------------------------------------------------------------------

func (s *calendarService) CreateVacation(ctx context.Context, userID uuid.UUID, req VacationRequest) (*repo.Vacation, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidRange
	}

	create := s.db.Vacation.Create().
		SetUserID(userID).
		SetStartDate(req.StartDate).
		SetEndDate(req.EndDate)
	if req.Note != "" {
		create = create.SetNote(req.Note)
	}

	v, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create vacation: %w", err)
	}
	return v, nil
}

func (s *calendarService) ListVacations(ctx context.Context, from, to time.Time) ([]*repo.Vacation, error) {
	vacations, err := s.db.Vacation.Query().
		Where(entvacation.EndDateGTE(from), entvacation.StartDateLT(to)).
		Order(entvacation.ByStartDate()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vacations: %w", err)
	}
	return vacations, nil
}

func (s *calendarService) DeleteVacation(ctx context.Context, actor *repo.User, id uuid.UUID) error {
	v, err := s.db.Vacation.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrVacationNotFound
		}
		return fmt.Errorf("get vacation: %w", err)
	}
	if actor.Role != entuser.RoleAdmin && v.UserID != actor.ID {
		return ErrNotOwner
	}
	return s.db.Vacation.DeleteOneID(id).Exec(ctx)
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *calendarService) participantIDs(ctx context.Context, meetingID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.MeetingParticipant.Query().
		Where(entmp.MeetingID(meetingID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids, nil
}

func createParticipants(ctx context.Context, tx *repo.Tx, meetingID uuid.UUID, userIDs []uuid.UUID) error {
	for _, uid := range userIDs {
		if err := tx.MeetingParticipant.Create().
			SetMeetingID(meetingID).
			SetUserID(uid).
			Exec(ctx); err != nil {
			return fmt.Errorf("add participant: %w", err)
		}
	}
	return nil
}

func validateMeeting(req MeetingRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if !req.EndsAt.After(req.StartsAt) {
		return ErrInvalidRange
	}
	return nil
}
