package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raydent/raydent_backend/internal/repo"
	entclinic "github.com/raydent/raydent_backend/internal/repo/clinic"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
	entuser "github.com/raydent/raydent_backend/internal/repo/user"
)

type Service interface {
	// Dashboard aggregates the month's headline numbers plus the
	// per-day volume series.
	Dashboard(ctx context.Context, month time.Time) (*DashboardReport, error)

	PerRadiologist(ctx context.Context, month time.Time) ([]RadiologistRow, error)
	PerClient(ctx context.Context, month time.Time) ([]ClientRow, error)

	// ForRadiologist is the self-scoped variant of PerRadiologist,
	// backing the signed-in radiologist's own financials view. Months
	// with no assignments return a zeroed row.
	ForRadiologist(ctx context.Context, radiologistID uuid.UUID, month time.Time) (*RadiologistRow, error)
}

type reportService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &reportService{db: db}
}

type DashboardReport struct {
	KPIs  KPIs         `json:"kpis"`
	Daily []DailyPoint `json:"daily"`
}

func (s *reportService) Dashboard(ctx context.Context, month time.Time) (*DashboardReport, error) {
	from, to := monthRange(month)

	exams, err := s.db.Exam.Query().
		Where(entexam.CreatedAtGTE(from), entexam.CreatedAtLT(to)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard exams: %w", err)
	}

	return &DashboardReport{
		KPIs:  ComputeKPIs(exams),
		Daily: ComputeDailySeries(exams, from, to),
	}, nil
}

func (s *reportService) PerRadiologist(ctx context.Context, month time.Time) ([]RadiologistRow, error) {
	from, to := monthRange(month)

	exams, err := s.db.Exam.Query().
		Where(
			entexam.CreatedAtGTE(from),
			entexam.CreatedAtLT(to),
			entexam.StatusIn(entexam.StatusFinalized, entexam.StatusInReview),
			entexam.RadiologistIDNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("radiologist report exams: %w", err)
	}

	rows := ComputePerRadiologist(exams)
	if err := s.fillRadiologistNames(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *reportService) PerClient(ctx context.Context, month time.Time) ([]ClientRow, error) {
	from, to := monthRange(month)

	exams, err := s.db.Exam.Query().
		Where(
			entexam.CreatedAtGTE(from),
			entexam.CreatedAtLT(to),
			entexam.StatusNEQ(entexam.StatusCancelled),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("client report exams: %w", err)
	}

	rows := ComputePerClient(exams)
	if err := s.fillClientNames(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *reportService) ForRadiologist(ctx context.Context, radiologistID uuid.UUID, month time.Time) (*RadiologistRow, error) {
	from, to := monthRange(month)

	exams, err := s.db.Exam.Query().
		Where(
			entexam.CreatedAtGTE(from),
			entexam.CreatedAtLT(to),
			entexam.StatusIn(entexam.StatusFinalized, entexam.StatusInReview),
			entexam.RadiologistIDEQ(radiologistID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("radiologist financials: %w", err)
	}

	row := RadiologistRow{RadiologistID: radiologistID}
	if rows := ComputePerRadiologist(exams); len(rows) == 1 {
		row = rows[0]
	}

	out := []RadiologistRow{row}
	if err := s.fillRadiologistNames(ctx, out); err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *reportService) fillRadiologistNames(ctx context.Context, rows []RadiologistRow) error {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.RadiologistID)
	}
	if len(ids) == 0 {
		return nil
	}
	users, err := s.db.User.Query().Where(entuser.IDIn(ids...)).All(ctx)
	if err != nil {
		return fmt.Errorf("radiologist names: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for i := range rows {
		rows[i].Name = names[rows[i].RadiologistID]
	}
	return nil
}

func (s *reportService) fillClientNames(ctx context.Context, rows []ClientRow) error {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ClientID)
	}
	if len(ids) == 0 {
		return nil
	}
	clinics, err := s.db.Clinic.Query().Where(entclinic.IDIn(ids...)).All(ctx)
	if err != nil {
		return fmt.Errorf("client names: %w", err)
	}
	names := make(map[uuid.UUID]string, len(clinics))
	for _, c := range clinics {
		names[c.ID] = c.Name
	}
	for i := range rows {
		rows[i].Name = names[rows[i].ClientID]
	}
	return nil
}

// monthRange returns the [first of month, first of next month) window in
// the month's location.
func monthRange(month time.Time) (time.Time, time.Time) {
	from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return from, from.AddDate(0, 1, 0)
}
