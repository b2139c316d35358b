package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/Shardul37/AlgoRecall/internal/journal"
	"github.com/Shardul37/AlgoRecall/internal/revision"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	color.NoColor = true
	var buffer bytes.Buffer
	return NewRenderer(&buffer), &buffer
}

func TestRenderer_RenderToday(t *testing.T) {
	tests := []struct {
		name      string
		revisions []revision.Revision
		wantLines []string
		notWant   []string
	}{
		{
			name:      "empty list",
			revisions: nil,
			wantLines: []string{"Nothing due today. Nice work!"},
		},
		{
			name: "overdue and flashcard annotations",
			revisions: []revision.Revision{
				{
					ID:             7,
					RevisionNumber: 2,
					ProblemName:    "Two Sum",
					Category:       "Arrays",
					Link:           "https://leetcode.com/problems/two-sum",
					IsOverdue:      true,
					DaysOverdue:    4,
					FlashcardTitle: "Hash map complement lookup",
				},
				{
					ID:             8,
					RevisionNumber: 1,
					ProblemName:    "Course Schedule",
					Category:       "Graphs",
				},
			},
			wantLines: []string{
				"2 revision(s) due today",
				"[7] Two Sum",
				"(Arrays, revision #2)",
				"4 day(s) overdue",
				"https://leetcode.com/problems/two-sum",
				"flashcard: Hash map complement lookup",
				"[8] Course Schedule",
				"algorecall complete <id> <1|2|3>",
			},
			notWant: []string{"[8] Course Schedule\n    0 day(s) overdue"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			renderer, buffer := newTestRenderer()
			renderer.RenderToday(tc.revisions)
			out := buffer.String()
			for _, want := range tc.wantLines {
				assert.Contains(t, out, want)
			}
			for _, not := range tc.notWant {
				assert.NotContains(t, out, not)
			}
		})
	}
}

func TestRenderer_RenderCalendar(t *testing.T) {
	renderer, buffer := newTestRenderer()

	overdue := revision.Revision{ID: 1, ProblemName: "Two Sum", IsOverdue: true}
	pending := revision.Revision{ID: 2, ProblemName: "Course Schedule"}
	data := revision.CalendarMap{
		"2025-10-24": {pending},
		"2025-10-20": {overdue, pending},
	}

	renderer.RenderCalendar(data, 10, 2025)
	out := buffer.String()

	assert.Contains(t, out, "October 2025")
	assert.Contains(t, out, "Mon   Tue   Wed   Thu   Fri   Sat   Sun")
	assert.Contains(t, out, "24:1")
	assert.Contains(t, out, "20:2!")

	// The October grid spans Sep 29 through Nov 2: five full lines of cells.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
}

func TestRenderer_RenderAnalytics(t *testing.T) {
	renderer, buffer := newTestRenderer()

	renderer.RenderAnalytics(revision.Analytics{
		TotalProblems:  12,
		TotalRevisions: 31,
		CurrentStreak:  4,
		CategoryBreakdown: []revision.CategoryStat{
			{Category: "Graphs", Count: 3},
			{Category: "Arrays", Count: 5},
			{Category: "Strings", Count: 3},
		},
	})
	out := buffer.String()

	assert.Contains(t, out, "current streak:  4 day(s)")
	assert.Contains(t, out, "total problems:  12")
	assert.Contains(t, out, "total revisions: 31")

	// Breakdown sorted by count descending, category name as tie break.
	arrays := strings.Index(out, "Arrays")
	graphs := strings.Index(out, "Graphs")
	strs := strings.Index(out, "Strings")
	assert.Less(t, arrays, graphs)
	assert.Less(t, graphs, strs)
}

func TestRenderer_RenderProblemDetail(t *testing.T) {
	renderer, buffer := newTestRenderer()

	first := revision.NewDate(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC))
	second := revision.NewDate(time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC))
	next := revision.NewDate(time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))
	renderer.RenderProblemDetail(revision.ProblemDetail{
		ID:               5,
		Name:             "Two Sum",
		Link:             "https://leetcode.com/problems/two-sum",
		Category:         "Arrays",
		NextRevisionDate: &next,
		Revisions: []revision.RevisionLogEntry{
			{RevisionNumber: 1, CompletedDate: &first, Rating: revision.RatingStruggled},
			{RevisionNumber: 3},
			{RevisionNumber: 2, CompletedDate: &second, Rating: revision.RatingMastered},
		},
	})
	out := buffer.String()

	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "next revision: 2025-11-01")
	assert.Contains(t, out, "#3  pending")
	assert.Contains(t, out, "#2  2025-10-10  mastered")
	assert.Contains(t, out, "#1  2025-10-01  struggled")

	// History renders newest revision first.
	assert.Less(t, strings.Index(out, "#3"), strings.Index(out, "#2"))
	assert.Less(t, strings.Index(out, "#2"), strings.Index(out, "#1"))
}

func TestRenderer_RenderJournal(t *testing.T) {
	renderer, buffer := newTestRenderer()

	renderer.RenderJournal(
		[]journal.Entry{
			{
				ProblemName: "Word Break",
				Category:    "Dynamic Programming",
				Rating:      int(revision.RatingStruggled),
				CompletedAt: time.Date(2025, 10, 24, 11, 0, 0, 0, time.UTC),
			},
			{
				ProblemName: "Two Sum",
				Category:    "Arrays",
				Rating:      int(revision.RatingMastered),
				CompletedAt: time.Date(2025, 10, 24, 9, 0, 0, 0, time.UTC),
			},
		},
		[]journal.RatingCount{
			{Rating: int(revision.RatingStruggled), Count: 1},
			{Rating: int(revision.RatingMastered), Count: 1},
		},
	)
	out := buffer.String()

	assert.Contains(t, out, "Recent completions")
	assert.Contains(t, out, "Word Break")
	assert.Contains(t, out, "struggled")
	assert.Contains(t, out, "mastered")
}

func TestRenderer_RenderJournal_Empty(t *testing.T) {
	renderer, buffer := newTestRenderer()
	renderer.RenderJournal(nil, nil)
	assert.Equal(t, "No completions recorded yet.\n", buffer.String())
}
