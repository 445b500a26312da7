package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/raydent/raydent_backend/internal/repo"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
)

func exam(client uuid.UUID, status entexam.Status, clientValue, radValue int64, createdAt time.Time) *repo.Exam {
	return &repo.Exam{
		ID:               uuid.New(),
		ClientID:         client,
		Status:           status,
		ClientValue:      clientValue,
		RadiologistValue: radValue,
		Margin:           clientValue - radValue,
		CreatedAt:        createdAt,
	}
}

func TestComputeKPIs(t *testing.T) {
	clinicA := uuid.New()
	clinicB := uuid.New()
	now := time.Now()

	exams := []*repo.Exam{
		exam(clinicA, entexam.StatusFinalized, 10000, 3500, now),
		exam(clinicA, entexam.StatusInReview, 8000, 3000, now),
		exam(clinicB, entexam.StatusAvailable, 6000, 0, now),
		exam(clinicB, entexam.StatusCancelled, 9000, 0, now),
	}

	k := ComputeKPIs(exams)
	require.Equal(t, 3, k.TotalExams, "cancelled exams are not billed")
	require.Equal(t, int64(24000), k.Revenue)
	require.Equal(t, int64(6500), k.Paid)
	require.Equal(t, int64(17500), k.Margin)
	require.Equal(t, int64(8000), k.AverageTicket)
	require.Equal(t, 2, k.ActiveClients)
}

func TestComputeKPIsEmptyMonth(t *testing.T) {
	k := ComputeKPIs(nil)
	require.Equal(t, 0, k.TotalExams)
	require.Equal(t, int64(0), k.AverageTicket)
	require.Equal(t, 0, k.ActiveClients)
}

func TestComputeDailySeries(t *testing.T) {
	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	clinic := uuid.New()

	exams := []*repo.Exam{
		exam(clinic, entexam.StatusFinalized, 100, 0, from.Add(3*time.Hour)),
		exam(clinic, entexam.StatusAvailable, 100, 0, from.Add(5*time.Hour)),
		exam(clinic, entexam.StatusFinalized, 100, 0, from.AddDate(0, 0, 9)),
		exam(clinic, entexam.StatusCancelled, 100, 0, from.AddDate(0, 0, 9)),
	}

	series := ComputeDailySeries(exams, from, to)
	require.Len(t, series, 28, "february 2026 has 28 days")
	require.Equal(t, "2026-02-01", series[0].Day)
	require.Equal(t, 2, series[0].Count)
	require.Equal(t, int64(200), series[0].Revenue)
	require.Equal(t, 1, series[9].Count)
	require.Equal(t, int64(100), series[9].Revenue, "cancelled exams carry no revenue")
	require.Equal(t, 0, series[1].Count, "empty days are still emitted")
}

func TestComputePerRadiologist(t *testing.T) {
	radA := uuid.New()
	radB := uuid.New()
	clinic := uuid.New()
	now := time.Now()

	a1 := exam(clinic, entexam.StatusFinalized, 10000, 3000, now)
	a1.RadiologistID = &radA
	a2 := exam(clinic, entexam.StatusFinalized, 10000, 4000, now)
	a2.RadiologistID = &radA
	a3 := exam(clinic, entexam.StatusInReview, 10000, 3000, now)
	a3.RadiologistID = &radA
	b1 := exam(clinic, entexam.StatusFinalized, 10000, 5000, now)
	b1.RadiologistID = &radB
	unassigned := exam(clinic, entexam.StatusAvailable, 10000, 0, now)

	rows := ComputePerRadiologist([]*repo.Exam{a1, a2, a3, b1, unassigned})
	require.Len(t, rows, 2, "unassigned exams produce no row")

	// Sorted by payout total, highest first. Finalized work only counts
	// toward the payout figures.
	require.Equal(t, radA, rows[0].RadiologistID)
	require.Equal(t, 2, rows[0].Count)
	require.Equal(t, int64(7000), rows[0].Total)
	require.Equal(t, int64(3500), rows[0].UnitValue)
	require.Equal(t, 1, rows[0].InReview)

	require.Equal(t, radB, rows[1].RadiologistID)
	require.Equal(t, int64(5000), rows[1].Total)
	require.Equal(t, int64(5000), rows[1].UnitValue)
	require.Equal(t, 0, rows[1].InReview)
}

func TestComputePerClient(t *testing.T) {
	clinicA := uuid.New()
	clinicB := uuid.New()
	now := time.Now()

	exams := []*repo.Exam{
		exam(clinicA, entexam.StatusFinalized, 4000, 1500, now),
		exam(clinicB, entexam.StatusFinalized, 9000, 3000, now),
		exam(clinicB, entexam.StatusInReview, 2000, 800, now),
		exam(clinicB, entexam.StatusCancelled, 5000, 0, now),
	}
	rows := ComputePerClient(exams)
	require.Len(t, rows, 2)

	require.Equal(t, clinicB, rows[0].ClientID)
	require.Equal(t, 2, rows[0].Count)
	require.Equal(t, int64(11000), rows[0].Total)
	require.Equal(t, int64(3800), rows[0].Paid)
	require.Equal(t, int64(7200), rows[0].Margin)

	require.Equal(t, clinicA, rows[1].ClientID)
	require.Equal(t, int64(1500), rows[1].Paid)
	require.Equal(t, int64(2500), rows[1].Margin)

	// Per-client totals reconcile with the dashboard figures computed
	// over the same exams.
	k := ComputeKPIs(exams)
	var revenue, paid int64
	for _, r := range rows {
		revenue += r.Total
		paid += r.Paid
	}
	require.Equal(t, k.Revenue, revenue)
	require.Equal(t, k.Paid, paid)
}
