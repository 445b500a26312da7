package exam

import "time"

// slaBusinessDays is the default turnaround for non-urgent exams.
const slaBusinessDays = 2

// AddBusinessDays advances t by n week days, skipping Saturdays and
// Sundays. No holiday calendar is applied.
func AddBusinessDays(t time.Time, n int) time.Time {
	added := 0
	for added < n {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return t
}

// Deadline returns the effective due time of an exam: the explicit
// urgent due when set, otherwise creation time plus the standard SLA.
func Deadline(createdAt time.Time, urgent bool, urgentDue *time.Time) time.Time {
	if urgent && urgentDue != nil {
		return *urgentDue
	}
	return AddBusinessDays(createdAt, slaBusinessDays)
}
