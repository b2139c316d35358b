// Package revision holds the domain model shared by the store, the remote
// accessor and the presentation layer: problems, their scheduled revisions and
// the aggregate projections the server computes for the client.
package revision

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Rating is the user's self-assessment recorded when completing a revision.
type Rating int

const (
	RatingForgot    Rating = 1
	RatingStruggled Rating = 2
	RatingMastered  Rating = 3
)

// Valid reports whether the rating is one of the three accepted grades.
func (r Rating) Valid() bool {
	return r >= RatingForgot && r <= RatingMastered
}

func (r Rating) String() string {
	switch r {
	case RatingForgot:
		return "forgot"
	case RatingStruggled:
		return "struggled"
	case RatingMastered:
		return "mastered"
	}
	return fmt.Sprintf("unknown(%d)", int(r))
}

// Date represents a date in YYYY-MM-DD format for JSON and YAML serialization.
// The server exchanges all scheduled and completed dates in this format.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate creates a Date truncated to day granularity.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// Some servers send full timestamps for dates
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("unable to parse date '%s': expected YYYY-MM-DD or RFC3339 format", s)
		}
	}
	d.Time = t
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.Format(dateLayout), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse(dateLayout, value.Value)
	if err != nil {
		return fmt.Errorf("unable to parse date '%s': expected YYYY-MM-DD format", value.Value)
	}
	d.Time = t
	return nil
}

// Revision is one scheduled or completed review of a problem. Display fields
// of the owning problem are denormalized so lists render without a join.
type Revision struct {
	ID             int64  `json:"id"`
	ProblemID      int64  `json:"problem_id"`
	RevisionNumber int    `json:"revision_number"`
	ScheduledDate  Date   `json:"scheduled_date"`
	CompletedDate  *Date  `json:"completed_date,omitempty"`
	Rating         Rating `json:"rating,omitempty"`
	IsCompleted    bool   `json:"is_completed"`

	IsOverdue   bool `json:"is_overdue"`
	DaysOverdue int  `json:"days_overdue"`

	ProblemName    string `json:"problem_name"`
	Category       string `json:"category"`
	Link           string `json:"link,omitempty"`
	Question       string `json:"question,omitempty"`
	FlashcardTitle string `json:"flashcard_title,omitempty"`
	FlashcardCode  string `json:"flashcard_code,omitempty"`
}

// OverdueOn reports whether the revision counts as overdue on the given day.
// A completed revision is never overdue.
func (r Revision) OverdueOn(today time.Time) bool {
	if r.IsCompleted {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	scheduled := time.Date(r.ScheduledDate.Year(), r.ScheduledDate.Month(), r.ScheduledDate.Day(), 0, 0, 0, 0, time.UTC)
	return scheduled.Before(day)
}

// DaysOverdueOn returns how many whole days past the scheduled date the given
// day is, or 0 when the revision is not overdue.
func (r Revision) DaysOverdueOn(today time.Time) int {
	if !r.OverdueOn(today) {
		return 0
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	scheduled := time.Date(r.ScheduledDate.Year(), r.ScheduledDate.Month(), r.ScheduledDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(day.Sub(scheduled).Hours() / 24)
}

// CalendarMap groups revisions by calendar day (key in YYYY-MM-DD form),
// scoped to one fetched month. Days without revisions are absent.
type CalendarMap map[string][]Revision

// ProblemDraft is the payload for creating a problem. The category set is
// enforced client-side; the server stores it as a plain string.
type ProblemDraft struct {
	Name           string `json:"name" validate:"required"`
	Link           string `json:"link" validate:"required,url"`
	Category       string `json:"category" validate:"required,category"`
	Question       string `json:"question,omitempty"`
	FlashcardTitle string `json:"flashcard_title,omitempty"`
	FlashcardCode  string `json:"flashcard_code,omitempty"`
}

// Categories returns the closed set of problem categories accepted by the
// client, in display order.
func Categories() []string {
	return []string{
		"Arrays",
		"Strings",
		"Linked List",
		"Stack",
		"Queue",
		"Trees",
		"Graphs",
		"Heap",
		"Binary Search",
		"Two Pointers",
		"Sliding Window",
		"Dynamic Programming",
		"Greedy",
		"Backtracking",
		"Math",
		"Bit Manipulation",
		"Other",
	}
}

// ValidCategory reports whether the category belongs to the closed set.
func ValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// RevisionLogEntry is one item of a problem's revision history as returned by
// the problem detail endpoint.
type RevisionLogEntry struct {
	RevisionNumber int    `json:"revision_number"`
	CompletedDate  *Date  `json:"completed_date,omitempty"`
	Rating         Rating `json:"rating,omitempty"`
}

// ProblemDetail is a problem with its full revision history. Fetched fresh on
// demand and never cached; ordering of Revisions is a presentation concern.
type ProblemDetail struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Link             string             `json:"link"`
	Category         string             `json:"category"`
	Question         string             `json:"question,omitempty"`
	FlashcardTitle   string             `json:"flashcard_title,omitempty"`
	FlashcardCode    string             `json:"flashcard_code,omitempty"`
	NextRevisionDate *Date              `json:"next_revision_date,omitempty"`
	Revisions        []RevisionLogEntry `json:"revisions"`
}

// CategoryStat is one entry of the analytics category breakdown.
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Analytics is the read-only aggregate snapshot computed by the server.
// It is replaced wholesale on each fetch, never merged.
type Analytics struct {
	TotalProblems     int            `json:"total_problems"`
	TotalRevisions    int            `json:"total_revisions"`
	CurrentStreak     int            `json:"current_streak"`
	CategoryBreakdown []CategoryStat `json:"category_breakdown"`
}
