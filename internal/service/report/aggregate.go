package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/raydent/raydent_backend/internal/repo"
	entexam "github.com/raydent/raydent_backend/internal/repo/exam"
)

// Values are centavos throughout.

type KPIs struct {
	TotalExams    int   `json:"total_exams"`
	Revenue       int64 `json:"revenue"`
	Paid          int64 `json:"paid"`
	Margin        int64 `json:"margin"`
	AverageTicket int64 `json:"average_ticket"`
	ActiveClients int   `json:"active_clients"`
}

type DailyPoint struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

type RadiologistRow struct {
	RadiologistID uuid.UUID `json:"radiologist_id"`
	Name          string    `json:"name"`
	Count         int       `json:"count"`
	Total         int64     `json:"total"`
	UnitValue     int64     `json:"unit_value"`
	InReview      int       `json:"in_review"`
}

type ClientRow struct {
	ClientID uuid.UUID `json:"client_id"`
	Name     string    `json:"name"`
	Count    int       `json:"count"`
	Total    int64     `json:"total"`
	Paid     int64     `json:"paid"`
	Margin   int64     `json:"margin"`
}

// ComputeKPIs folds a month's exams into the dashboard headline numbers.
// Cancelled exams are excluded from every figure. The average ticket is
// zero for an empty month rather than a division error.
func ComputeKPIs(exams []*repo.Exam) KPIs {
	billed := lo.Filter(exams, func(e *repo.Exam, _ int) bool {
		return e.Status != entexam.StatusCancelled
	})

	var k KPIs
	k.TotalExams = len(billed)
	clients := map[uuid.UUID]struct{}{}
	for _, e := range billed {
		k.Revenue += e.ClientValue
		k.Paid += e.RadiologistValue
		k.Margin += e.Margin
		clients[e.ClientID] = struct{}{}
	}
	k.ActiveClients = len(clients)
	if k.TotalExams > 0 {
		k.AverageTicket = k.Revenue / int64(k.TotalExams)
	}
	return k
}

// ComputeDailySeries counts non-cancelled exams and their billed value
// per calendar day across the [from, to) window, emitting a point for
// every day including the empty ones.
func ComputeDailySeries(exams []*repo.Exam, from, to time.Time) []DailyPoint {
	counts := map[string]int{}
	revenue := map[string]int64{}
	for _, e := range exams {
		if e.Status == entexam.StatusCancelled {
			continue
		}
		day := e.CreatedAt.In(from.Location()).Format("2006-01-02")
		counts[day]++
		revenue[day] += e.ClientValue
	}

	var series []DailyPoint
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		series = append(series, DailyPoint{Day: day, Count: counts[day], Revenue: revenue[day]})
	}
	return series
}

// ComputePerRadiologist groups a radiologist's finalized exams into the
// payout row. Count, Total and UnitValue cover finalized work only;
// in_review assignments are tallied separately. Unassigned exams are
// ignored.
func ComputePerRadiologist(exams []*repo.Exam) []RadiologistRow {
	assigned := lo.Filter(exams, func(e *repo.Exam, _ int) bool {
		return e.RadiologistID != nil
	})
	groups := lo.GroupBy(assigned, func(e *repo.Exam) uuid.UUID {
		return *e.RadiologistID
	})

	rows := make([]RadiologistRow, 0, len(groups))
	for id, es := range groups {
		row := RadiologistRow{RadiologistID: id}
		for _, e := range es {
			switch e.Status {
			case entexam.StatusFinalized:
				row.Count++
				row.Total += e.RadiologistValue
			case entexam.StatusInReview:
				row.InReview++
			}
		}
		if row.Count > 0 {
			row.UnitValue = row.Total / int64(row.Count)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// ComputePerClient groups non-cancelled exams by clinic, carrying the
// billed total, the radiologist payout and the resulting margin.
// Cancelled exams are skipped so the totals always reconcile with the
// dashboard figures.
func ComputePerClient(exams []*repo.Exam) []ClientRow {
	billed := lo.Filter(exams, func(e *repo.Exam, _ int) bool {
		return e.Status != entexam.StatusCancelled
	})
	groups := lo.GroupBy(billed, func(e *repo.Exam) uuid.UUID {
		return e.ClientID
	})

	rows := make([]ClientRow, 0, len(groups))
	for id, es := range groups {
		row := ClientRow{ClientID: id, Count: len(es)}
		for _, e := range es {
			row.Total += e.ClientValue
			row.Paid += e.RadiologistValue
		}
		row.Margin = row.Total - row.Paid
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}
