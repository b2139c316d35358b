// Package store holds the authoritative in-memory revision state for a
// session: the due-today list, the resident calendar month and the analytics
// snapshot, together with the operations that keep them consistent with the
// server.
//
// Consistency contracts:
//   - a failed fetch keeps the previous projection value and records the error
//     (stale-but-present beats a blanked view),
//   - each projection tracks its own loading flag and error,
//   - every fetch carries a per-projection epoch taken at request start; a
//     response whose epoch is no longer current is discarded, so the resident
//     value always corresponds to the most recently requested target whatever
//     the arrival order,
//   - completing a revision removes it optimistically and restores the
//     captured pre-image at its original position if the request fails.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Shardul37/AlgoRecall/internal/api"
	"github.com/Shardul37/AlgoRecall/internal/revision"
)

// Projection identifies one of the store's derived views.
type Projection string

const (
	ProjectionToday     Projection = "today"
	ProjectionCalendar  Projection = "calendar"
	ProjectionAnalytics Projection = "analytics"
)

// Store is an explicit state container injected into the presentation layer.
// All mutation goes through its named operations; reads return copies.
type Store struct {
	client api.Client

	mu             sync.Mutex
	todayRevisions []revision.Revision
	calendarData   revision.CalendarMap
	calendarMonth  int
	calendarYear   int
	analyticsData  *revision.Analytics

	loading map[Projection]bool
	errs    map[Projection]error
	epochs  map[Projection]uint64
}

// New creates a store backed by the given remote accessor.
func New(client api.Client) *Store {
	return &Store{
		client:  client,
		loading: make(map[Projection]bool),
		errs:    make(map[Projection]error),
		epochs:  make(map[Projection]uint64),
	}
}

// beginFetch marks the projection loading and returns the epoch of this fetch.
func (s *Store) beginFetch(p Projection) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epochs[p]++
	s.loading[p] = true
	return s.epochs[p]
}

// endFetch applies the outcome of a fetch under the lock. It returns false
// without calling apply when a newer fetch for the same projection has started
// since; in that case loading and error are left for the newer fetch to settle.
func (s *Store) endFetch(p Projection, epoch uint64, fetchErr error, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epochs[p] != epoch {
		slog.Default().Debug("discarding stale response", "projection", string(p), "epoch", epoch)
		return false
	}
	s.loading[p] = false
	s.errs[p] = fetchErr
	if fetchErr == nil {
		apply()
	}
	return true
}

// FetchTodayRevisions replaces the due-today list wholesale with the server
// response. On failure the previous list is kept and the error recorded.
func (s *Store) FetchTodayRevisions(ctx context.Context) error {
	epoch := s.beginFetch(ProjectionToday)

	revisions, err := s.client.TodayRevisions(ctx)
	if err != nil {
		err = fmt.Errorf("client.TodayRevisions() > %w", err)
	}
	s.endFetch(ProjectionToday, epoch, err, func() {
		s.todayRevisions = revisions
	})
	return err
}

// CompleteRevision records a rating for a revision. The revision is removed
// from the today list before the request is sent; if the request fails the
// pre-image is restored at its original index and the error returned, so the
// view never silently drifts from the server.
//
// Calendar and analytics are deliberately untouched; they stay stale until
// their next explicit fetch.
func (s *Store) CompleteRevision(ctx context.Context, revisionID int64, rating revision.Rating) error {
	if !rating.Valid() {
		return fmt.Errorf("invalid rating %d: must be 1, 2 or 3", int(rating))
	}

	s.mu.Lock()
	index := -1
	var preImage revision.Revision
	for i, rev := range s.todayRevisions {
		if rev.ID == revisionID {
			index = i
			preImage = rev
			break
		}
	}
	if index >= 0 {
		s.todayRevisions = append(s.todayRevisions[:index], s.todayRevisions[index+1:]...)
	}
	s.mu.Unlock()

	if err := s.client.CompleteRevision(ctx, revisionID, rating); err != nil {
		if index >= 0 {
			s.restoreRevision(preImage, index)
		}
		return fmt.Errorf("client.CompleteRevision(%d) > %w", revisionID, err)
	}
	return nil
}

// restoreRevision reinserts a removed revision at its original index, clamped
// in case a concurrent refresh shrank the list.
func (s *Store) restoreRevision(rev revision.Revision, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.todayRevisions {
		if existing.ID == rev.ID {
			return
		}
	}
	if index > len(s.todayRevisions) {
		index = len(s.todayRevisions)
	}
	s.todayRevisions = append(s.todayRevisions, revision.Revision{})
	copy(s.todayRevisions[index+1:], s.todayRevisions[index:])
	s.todayRevisions[index] = rev
}

// AddProblem validates and submits a new problem. The server schedules its
// first revision for a future date, so the today list is not touched on
// success; on failure no state changes and the error is returned.
func (s *Store) AddProblem(ctx context.Context, draft revision.ProblemDraft) error {
	if err := revision.ValidateDraft(draft); err != nil {
		return err
	}
	if err := s.client.CreateProblem(ctx, draft); err != nil {
		return fmt.Errorf("client.CreateProblem() > %w", err)
	}
	return nil
}

// FetchCalendar replaces the resident calendar month wholesale. Only one
// month is resident at a time; switching months always refetches.
func (s *Store) FetchCalendar(ctx context.Context, month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("invalid month %d: must be 1-12", month)
	}
	if year < 1000 || year > 9999 {
		return fmt.Errorf("invalid year %d: must be a 4-digit year", year)
	}

	epoch := s.beginFetch(ProjectionCalendar)

	data, err := s.client.Calendar(ctx, month, year)
	if err != nil {
		err = fmt.Errorf("client.Calendar(%d, %d) > %w", month, year, err)
	}
	s.endFetch(ProjectionCalendar, epoch, err, func() {
		s.calendarData = data
		s.calendarMonth = month
		s.calendarYear = year
	})
	return err
}

// FetchAnalytics replaces the analytics snapshot wholesale.
func (s *Store) FetchAnalytics(ctx context.Context) error {
	epoch := s.beginFetch(ProjectionAnalytics)

	data, err := s.client.Analytics(ctx)
	if err != nil {
		err = fmt.Errorf("client.Analytics() > %w", err)
	}
	s.endFetch(ProjectionAnalytics, epoch, err, func() {
		s.analyticsData = &data
	})
	return err
}

// TodayRevisions returns a copy of the due-today list in server order.
func (s *Store) TodayRevisions() []revision.Revision {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]revision.Revision, len(s.todayRevisions))
	copy(out, s.todayRevisions)
	return out
}

// Calendar returns a copy of the resident calendar map and which month and
// year it belongs to. The month is 0 until the first successful fetch.
func (s *Store) Calendar() (revision.CalendarMap, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(revision.CalendarMap, len(s.calendarData))
	for day, revs := range s.calendarData {
		copied := make([]revision.Revision, len(revs))
		copy(copied, revs)
		out[day] = copied
	}
	return out, s.calendarMonth, s.calendarYear
}

// Analytics returns a copy of the snapshot, or nil before the first fetch.
func (s *Store) Analytics() *revision.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analyticsData == nil {
		return nil
	}
	out := *s.analyticsData
	out.CategoryBreakdown = make([]revision.CategoryStat, len(s.analyticsData.CategoryBreakdown))
	copy(out.CategoryBreakdown, s.analyticsData.CategoryBreakdown)
	return &out
}

// Loading reports whether a fetch for the projection is in flight.
func (s *Store) Loading(p Projection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading[p]
}

// Err returns the last error recorded for the projection, or nil.
func (s *Store) Err(p Projection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs[p]
}
