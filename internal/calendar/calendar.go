// Package calendar provides pure date helpers for the calendar view: the
// month grid and overdue classification of a day's revisions.
package calendar

import (
	"time"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

const dayKeyLayout = "2006-01-02"

// Grid returns every day from the Monday on or before the first of ref's
// month through the Sunday on or after its last day, ascending. The result
// length is always a multiple of 7.
func Grid(ref time.Time) []time.Time {
	monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	start := startOfWeek(monthStart)
	end := startOfWeek(monthEnd).AddDate(0, 0, 6)

	days := make([]time.Time, 0, 42)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// startOfWeek returns the Monday on or before the given day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// HasOverdue reports whether any revision in the set is pending and flagged
// overdue. Completed revisions never count, whatever their flag says.
func HasOverdue(revisions []revision.Revision) bool {
	for _, rev := range revisions {
		if rev.IsOverdue && !rev.IsCompleted {
			return true
		}
	}
	return false
}

// DayKey formats a day as the YYYY-MM-DD key used by the calendar map.
func DayKey(day time.Time) string {
	return day.Format(dayKeyLayout)
}

// BucketDate returns the day a revision belongs to on the calendar: the
// completed date once completed, the scheduled date while pending.
func BucketDate(rev revision.Revision) revision.Date {
	if rev.IsCompleted && rev.CompletedDate != nil {
		return *rev.CompletedDate
	}
	return rev.ScheduledDate
}
