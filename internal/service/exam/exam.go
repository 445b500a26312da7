package exam

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/samber/lo"

	"github.com/raydent/raydent_backend/internal/events"
	"github.com/raydent/raydent_backend/internal/repo"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entevent "github.com/raydent/raydent_backend/internal/repo/examevent"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
	"github.com/raydent/raydent_backend/internal/service/pricing"
	"github.com/raydent/raydent_backend/pkg/database"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	ClientID         uuid.UUID
	ExamTypeID       uuid.UUID
	PatientName      string
	PatientBirthDate *string
	Software         string
	Urgent           bool
	UrgentDue        *time.Time
	Observations     *string
	DentistName      *string
	Purpose          *string
	ExamDate         *string
}

type ListRequest struct {
	Status        *string
	ClientID      *uuid.UUID
	RadiologistID *uuid.UUID
	ExamTypeID    *uuid.UUID
	From          *time.Time
	To            *time.Time
	Page          int
	PerPage       int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor *repo.User, req CreateRequest) (*repo.Exam, error)
	Get(ctx context.Context, actor *repo.User, examID uuid.UUID) (*repo.Exam, error)
	List(ctx context.Context, actor *repo.User, req ListRequest) ([]*repo.Exam, error)

	// ListAvailable returns unclaimed exams the radiologist can read,
	// urgent ones first, then closest effective deadline.
	ListAvailable(ctx context.Context, radiologist *repo.User) ([]*repo.Exam, error)

	Claim(ctx context.Context, radiologist *repo.User, examID uuid.UUID) (*repo.Exam, error)
	Reassign(ctx context.Context, actorID uuid.UUID, examID, newRadiologistID uuid.UUID) (*repo.Exam, error)
	Finalize(ctx context.Context, radiologist *repo.User, examID uuid.UUID, reportFileKey *string) (*repo.Exam, error)
	Cancel(ctx context.Context, actor *repo.User, examID uuid.UUID) (*repo.Exam, error)

	AttachSourceFile(ctx context.Context, actor *repo.User, examID uuid.UUID, fileKey string) error
	History(ctx context.Context, examID uuid.UUID) ([]*repo.ExamEvent, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type examService struct {
	db      *repo.Client
	pricing pricing.Service
	nc      *nats.Conn // nil disables event publishing
}

func New(db *repo.Client, pricingSvc pricing.Service, nc *nats.Conn) Service {
	return &examService{db: db, pricing: pricingSvc, nc: nc}
}

func (s *examService) Create(ctx context.Context, actor *repo.User, req CreateRequest) (*repo.Exam, error) {
	// Client-role users always create for their own clinic.
	if actor.Role == entuser.RoleClient {
		if actor.ClientID == nil {
			return nil, ErrForbidden
		}
		req.ClientID = *actor.ClientID
	}
	if req.Urgent && req.UrgentDue == nil {
		return nil, ErrUrgentDueRequired
	}

	// Snapshot the billed amount at creation time. A missing price entry
	// resolves to zero; the gap is logged so admins can fix the table.
	clientValue, found, err := s.pricing.ResolveClientValue(ctx, req.ClientID, req.ExamTypeID)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Warn("no client price entry, exam created with zero value",
			"client_id", req.ClientID, "exam_type_id", req.ExamTypeID)
	}

	var created *repo.Exam
	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		c := tx.Exam.Create().
			SetClientID(req.ClientID).
			SetExamTypeID(req.ExamTypeID).
			SetPatientName(req.PatientName).
			SetSoftware(entexam.Software(req.Software)).
			SetUrgent(req.Urgent).
			SetClientValue(clientValue).
			SetRadiologistValue(0).
			SetMargin(clientValue)

		if req.PatientBirthDate != nil {
			c = c.SetNillablePatientBirthDate(req.PatientBirthDate)
		}
		if req.UrgentDue != nil {
			c = c.SetNillableUrgentDue(req.UrgentDue)
		}
		if req.Observations != nil {
			c = c.SetNillableObservations(req.Observations)
		}
		if req.DentistName != nil {
			c = c.SetNillableDentistName(req.DentistName)
		}
		if req.Purpose != nil {
			c = c.SetNillablePurpose(req.Purpose)
		}
		if req.ExamDate != nil {
			c = c.SetNillableExamDate(req.ExamDate)
		}

		e, err := c.Save(ctx)
		if err != nil {
			return fmt.Errorf("create exam: %w", err)
		}

		if err := appendEvent(ctx, tx, e.ID, entevent.StatusAvailable, &actor.ID, nil); err != nil {
			return err
		}

		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.SubjectExamCreated, created.ID)
	return created, nil
}

func (s *examService) Get(ctx context.Context, actor *repo.User, examID uuid.UUID) (*repo.Exam, error) {
	e, err := s.db.Exam.Query().Where(entexam.ID(examID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}
	if !canSee(actor, e) {
		return nil, ErrForbidden
	}
	return e, nil
}

func (s *examService) List(ctx context.Context, actor *repo.User, req ListRequest) ([]*repo.Exam, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 200 {
		req.PerPage = 50
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Exam.Query()

	// Non-admin callers only ever see their own slice of the collection.
	switch actor.Role {
	case entuser.RoleClient:
		if actor.ClientID == nil {
			return nil, ErrForbidden
		}
		q = q.Where(entexam.ClientID(*actor.ClientID))
	case entuser.RoleRadiologist:
		q = q.Where(entexam.RadiologistID(actor.ID))
	case entuser.RoleAdmin:
		// unrestricted
	default:
		return nil, ErrForbidden
	}

	if req.Status != nil {
		q = q.Where(entexam.StatusEQ(entexam.Status(*req.Status)))
	}
	if req.ClientID != nil {
		q = q.Where(entexam.ClientID(*req.ClientID))
	}
	if req.RadiologistID != nil {
		q = q.Where(entexam.RadiologistID(*req.RadiologistID))
	}
	if req.ExamTypeID != nil {
		q = q.Where(entexam.ExamTypeID(*req.ExamTypeID))
	}
	if req.From != nil {
		q = q.Where(entexam.CreatedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entexam.CreatedAtLT(*req.To))
	}

	exams, err := q.Order(entexam.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}
	return exams, nil
}

func (s *examService) ListAvailable(ctx context.Context, radiologist *repo.User) ([]*repo.Exam, error) {
	if radiologist.Role != entuser.RoleRadiologist {
		return nil, ErrNotRadiologist
	}
	if len(radiologist.Softwares) == 0 {
		return []*repo.Exam{}, nil
	}

	softwares := lo.Map(radiologist.Softwares, func(s string, _ int) entexam.Software {
		return entexam.Software(s)
	})

	exams, err := s.db.Exam.Query().
		Where(
			entexam.StatusEQ(entexam.StatusAvailable),
			entexam.SoftwareIn(softwares...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available exams: %w", err)
	}

	sort.SliceStable(exams, func(i, j int) bool {
		a, b := exams[i], exams[j]
		if a.Urgent != b.Urgent {
			return a.Urgent
		}
		da := Deadline(a.CreatedAt, a.Urgent, a.UrgentDue)
		db := Deadline(b.CreatedAt, b.Urgent, b.UrgentDue)
		return da.Before(db)
	})
	return exams, nil
}

// Claim assigns an available exam to the calling radiologist. The status
// write is conditioned on the row still being available, so the second of
// two concurrent claims loses with ErrStatusConflict instead of silently
// overwriting the first.
func (s *examService) Claim(ctx context.Context, radiologist *repo.User, examID uuid.UUID) (*repo.Exam, error) {
	if radiologist.Role != entuser.RoleRadiologist {
		return nil, ErrNotRadiologist
	}

	e, err := s.db.Exam.Query().Where(entexam.ID(examID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}

	if !lo.Contains(radiologist.Softwares, string(e.Software)) {
		return nil, ErrSoftwareIncompatible
	}

	payout, _, err := s.pricing.ResolveRadiologistValue(ctx, e.ClientID, e.ExamTypeID, radiologist.ID)
	if err != nil {
		return nil, err
	}
	margin := e.ClientValue - payout

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		n, err := tx.Exam.Update().
			Where(
				entexam.ID(examID),
				entexam.StatusEQ(entexam.StatusAvailable),
			).
			SetStatus(entexam.StatusInReview).
			SetRadiologistID(radiologist.ID).
			SetRadiologistValue(payout).
			SetMargin(margin).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("claim exam: %w", err)
		}
		if n == 0 {
			return ErrStatusConflict
		}
		return appendEvent(ctx, tx, examID, entevent.StatusInReview, &radiologist.ID, nil)
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.SubjectExamClaimed, examID)
	return s.db.Exam.Get(ctx, examID)
}

// Reassign moves a non-terminal exam to another radiologist and
// recomputes the payout snapshot. Admin-only; routed behind the rbac
// middleware.
func (s *examService) Reassign(ctx context.Context, actorID uuid.UUID, examID, newRadiologistID uuid.UUID) (*repo.Exam, error) {
	rad, err := s.db.User.Query().
		Where(entuser.ID(newRadiologistID), entuser.RoleEQ(entuser.RoleRadiologist)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotRadiologist
		}
		return nil, fmt.Errorf("get radiologist: %w", err)
	}

	e, err := s.db.Exam.Query().Where(entexam.ID(examID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}
	if e.Status == entexam.StatusFinalized || e.Status == entexam.StatusCancelled {
		return nil, ErrTerminalStatus
	}

	payout, _, err := s.pricing.ResolveRadiologistValue(ctx, e.ClientID, e.ExamTypeID, rad.ID)
	if err != nil {
		return nil, err
	}
	margin := e.ClientValue - payout

	err = database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		n, err := tx.Exam.Update().
			Where(
				entexam.ID(examID),
				entexam.StatusIn(entexam.StatusAvailable, entexam.StatusInReview),
			).
			SetStatus(entexam.StatusInReview).
			SetRadiologistID(rad.ID).
			SetRadiologistValue(payout).
			SetMargin(margin).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reassign exam: %w", err)
		}
		if n == 0 {
			return ErrStatusConflict
		}
		note := "reassigned"
		return appendEvent(ctx, tx, examID, entevent.StatusInReview, &actorID, &note)
	})
	if err != nil {
		return nil, err
	}

	return s.db.Exam.Get(ctx, examID)
}

func (s *examService) Finalize(ctx context.Context, radiologist *repo.User, examID uuid.UUID, reportFileKey *string) (*repo.Exam, error) {
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		u := tx.Exam.Update().
			Where(
				entexam.ID(examID),
				entexam.StatusEQ(entexam.StatusInReview),
				entexam.RadiologistID(radiologist.ID),
			).
			SetStatus(entexam.StatusFinalized)
		if reportFileKey != nil {
			u = u.SetNillableReportFileKey(reportFileKey)
		}
		n, err := u.Save(ctx)
		if err != nil {
			return fmt.Errorf("finalize exam: %w", err)
		}
		if n == 0 {
			return ErrStatusConflict
		}
		return appendEvent(ctx, tx, examID, entevent.StatusFinalized, &radiologist.ID, nil)
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.SubjectExamFinalized, examID)
	return s.db.Exam.Get(ctx, examID)
}

// Cancel is valid from available or in_review only. Money snapshots are
// left as they were.
func (s *examService) Cancel(ctx context.Context, actor *repo.User, examID uuid.UUID) (*repo.Exam, error) {
	err := database.WithTx(ctx, s.db, func(tx *repo.Tx) error {
		n, err := tx.Exam.Update().
			Where(
				entexam.ID(examID),
				entexam.StatusIn(entexam.StatusAvailable, entexam.StatusInReview),
			).
			SetStatus(entexam.StatusCancelled).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("cancel exam: %w", err)
		}
		if n == 0 {
			return ErrStatusConflict
		}
		return appendEvent(ctx, tx, examID, entevent.StatusCancelled, &actor.ID, nil)
	})
	if err != nil {
		return nil, err
	}

	return s.db.Exam.Get(ctx, examID)
}

func (s *examService) AttachSourceFile(ctx context.Context, actor *repo.User, examID uuid.UUID, fileKey string) error {
	e, err := s.Get(ctx, actor, examID)
	if err != nil {
		return err
	}
	return s.db.Exam.UpdateOne(e).SetSourceFileKey(fileKey).Exec(ctx)
}

func (s *examService) History(ctx context.Context, examID uuid.UUID) ([]*repo.ExamEvent, error) {
	evs, err := s.db.ExamEvent.Query().
		Where(entevent.ExamID(examID)).
		Order(entevent.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("exam history: %w", err)
	}
	return evs, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func appendEvent(ctx context.Context, tx *repo.Tx, examID uuid.UUID, status entevent.Status, actorID *uuid.UUID, note *string) error {
	c := tx.ExamEvent.Create().
		SetExamID(examID).
		SetStatus(status)
	if actorID != nil {
		c = c.SetNillableActorID(actorID)
	}
	if note != nil {
		c = c.SetNillableNote(note)
	}
	if err := c.Exec(ctx); err != nil {
		return fmt.Errorf("append exam event: %w", err)
	}
	return nil
}

func canSee(actor *repo.User, e *repo.Exam) bool {
	switch actor.Role {
	case entuser.RoleAdmin:
		return true
	case entuser.RoleClient:
		return actor.ClientID != nil && *actor.ClientID == e.ClientID
	case entuser.RoleRadiologist:
		// Radiologists see unclaimed work and their own assignments.
		if e.Status == entexam.StatusAvailable {
			return lo.Contains(actor.Softwares, string(e.Software))
		}
		return e.RadiologistID != nil && *e.RadiologistID == actor.ID
	default:
		return false
	}
}

func (s *examService) publish(subject string, examID uuid.UUID) {
	if s.nc == nil {
		return
	}
	if err := s.nc.Publish(subject+"."+examID.String(), []byte(examID.String())); err != nil {
		slog.Warn("publish exam event", "subject", subject, "exam_id", examID, "err", err)
	}
}
