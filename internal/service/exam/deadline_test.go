package exam

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"monday plus two", date(2026, time.March, 2), 2, date(2026, time.March, 4)},
		{"thursday skips weekend", date(2026, time.March, 5), 2, date(2026, time.March, 9)},
		{"friday skips weekend", date(2026, time.March, 6), 2, date(2026, time.March, 10)},
		{"saturday start lands tuesday", date(2026, time.March, 7), 2, date(2026, time.March, 10)},
		{"sunday start lands tuesday", date(2026, time.March, 8), 2, date(2026, time.March, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddBusinessDays(tt.start, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddBusinessDays(%v, %d) = %v, want %v", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestDeadline(t *testing.T) {
	created := date(2026, time.March, 2)
	due := date(2026, time.March, 3)

	t.Run("urgent uses explicit due", func(t *testing.T) {
		got := Deadline(created, true, &due)
		if !got.Equal(due) {
			t.Errorf("Deadline() = %v, want %v", got, due)
		}
	})

	t.Run("non-urgent uses sla", func(t *testing.T) {
		got := Deadline(created, false, nil)
		want := date(2026, time.March, 4)
		if !got.Equal(want) {
			t.Errorf("Deadline() = %v, want %v", got, want)
		}
	})

	t.Run("urgent without due falls back to sla", func(t *testing.T) {
		got := Deadline(created, true, nil)
		want := date(2026, time.March, 4)
		if !got.Equal(want) {
			t.Errorf("Deadline() = %v, want %v", got, want)
		}
	})
}
