// Package cli renders store projections for the terminal. It reads through
// the store's API only and never mutates state itself.
package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/Shardul37/AlgoRecall/internal/calendar"
	"github.com/Shardul37/AlgoRecall/internal/journal"
	"github.com/Shardul37/AlgoRecall/internal/revision"
)

// Renderer writes human-readable views of the store's projections.
type Renderer struct {
	out    io.Writer
	bold   *color.Color
	italic *color.Color
	red    *color.Color
	green  *color.Color
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
	}
}

// RenderToday prints the due-today list in server order.
func (r *Renderer) RenderToday(revisions []revision.Revision) {
	if len(revisions) == 0 {
		fmt.Fprintln(r.out, "Nothing due today. Nice work!")
		return
	}

	r.bold.Fprintf(r.out, "%d revision(s) due today\n\n", len(revisions))
	for _, rev := range revisions {
		r.bold.Fprintf(r.out, "[%d] %s", rev.ID, rev.ProblemName)
		fmt.Fprintf(r.out, "  (%s, revision #%d)\n", rev.Category, rev.RevisionNumber)
		if rev.IsOverdue && !rev.IsCompleted {
			r.red.Fprintf(r.out, "    %d day(s) overdue\n", rev.DaysOverdue)
		}
		if rev.Link != "" {
			r.italic.Fprintf(r.out, "    %s\n", rev.Link)
		}
		if rev.FlashcardTitle != "" {
			fmt.Fprintf(r.out, "    flashcard: %s\n", rev.FlashcardTitle)
		}
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Rate with: algorecall complete <id> <1|2|3>  (1 forgot, 2 struggled, 3 mastered)")
}

// RenderCalendar prints the month grid with per-day revision counts. Days
// outside the month print blank; days with any pending overdue revision are
// marked with '!'.
func (r *Renderer) RenderCalendar(data revision.CalendarMap, month, year int) {
	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	r.bold.Fprintf(r.out, "%s %d\n", ref.Month(), year)
	fmt.Fprintln(r.out, "Mon   Tue   Wed   Thu   Fri   Sat   Sun")

	for i, day := range calendar.Grid(ref) {
		if int(day.Month()) != month {
			fmt.Fprintf(r.out, "%-6s", "")
		} else {
			cell := fmt.Sprintf("%2d", day.Day())
			if revs := data[calendar.DayKey(day)]; len(revs) > 0 {
				cell = fmt.Sprintf("%2d:%d", day.Day(), len(revs))
				if calendar.HasOverdue(revs) {
					cell += "!"
				}
			}
			fmt.Fprintf(r.out, "%-6s", cell)
		}
		if i%7 == 6 {
			fmt.Fprintln(r.out)
		}
	}
}

// RenderAnalytics prints the aggregate snapshot.
func (r *Renderer) RenderAnalytics(analytics revision.Analytics) {
	r.bold.Fprintln(r.out, "Progress")
	fmt.Fprintf(r.out, "  current streak:  %d day(s)\n", analytics.CurrentStreak)
	fmt.Fprintf(r.out, "  total problems:  %d\n", analytics.TotalProblems)
	fmt.Fprintf(r.out, "  total revisions: %d\n", analytics.TotalRevisions)

	if len(analytics.CategoryBreakdown) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	r.bold.Fprintln(r.out, "By category")
	breakdown := make([]revision.CategoryStat, len(analytics.CategoryBreakdown))
	copy(breakdown, analytics.CategoryBreakdown)
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	for _, stat := range breakdown {
		fmt.Fprintf(r.out, "  %-20s %d\n", stat.Category, stat.Count)
	}
}

// RenderProblemDetail prints one problem and its history, newest revision
// first. The accessor returns history unsorted; ordering happens here.
func (r *Renderer) RenderProblemDetail(detail revision.ProblemDetail) {
	r.bold.Fprintln(r.out, detail.Name)
	fmt.Fprintf(r.out, "  category: %s\n", detail.Category)
	r.italic.Fprintf(r.out, "  %s\n", detail.Link)
	if detail.NextRevisionDate != nil {
		fmt.Fprintf(r.out, "  next revision: %s\n", detail.NextRevisionDate.Format("2006-01-02"))
	}
	if detail.Question != "" {
		fmt.Fprintf(r.out, "\n%s\n", detail.Question)
	}

	history := make([]revision.RevisionLogEntry, len(detail.Revisions))
	copy(history, detail.Revisions)
	sort.Slice(history, func(i, j int) bool {
		return history[i].RevisionNumber > history[j].RevisionNumber
	})

	fmt.Fprintln(r.out)
	r.bold.Fprintln(r.out, "History")
	for _, entry := range history {
		if entry.CompletedDate == nil {
			fmt.Fprintf(r.out, "  #%d  pending\n", entry.RevisionNumber)
			continue
		}
		line := fmt.Sprintf("  #%d  %s  %s\n",
			entry.RevisionNumber, entry.CompletedDate.Format("2006-01-02"), entry.Rating)
		if entry.Rating == revision.RatingMastered {
			r.green.Fprint(r.out, line)
		} else {
			fmt.Fprint(r.out, line)
		}
	}
}

// RenderJournal prints recent local completions and the rating distribution.
func (r *Renderer) RenderJournal(entries []journal.Entry, counts []journal.RatingCount) {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, "No completions recorded yet.")
		return
	}

	r.bold.Fprintln(r.out, "Recent completions")
	for _, entry := range entries {
		fmt.Fprintf(r.out, "  %s  %-30s %s (%s)\n",
			entry.CompletedAt.Format("2006-01-02"),
			entry.ProblemName,
			revision.Rating(entry.Rating),
			entry.Category,
		)
	}

	if len(counts) > 0 {
		fmt.Fprintln(r.out)
		for _, count := range counts {
			fmt.Fprintf(r.out, "  %-10s %d\n", revision.Rating(count.Rating), count.Count)
		}
	}
}
