// Package testutil provides shared test helpers for creating config files and
// revision fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

// SetupTestConfig creates a config file pointing at the given server URL with
// a journal and export directory under tmpDir. Returns the config file path.
func SetupTestConfig(t *testing.T, tmpDir, serverURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`server:
  base_url: %s
  timeout_seconds: 2
  retry_attempts: 0
journal:
  path: %s
exports:
  deck_directory: %s
`,
		serverURL,
		filepath.Join(tmpDir, "journal.db"),
		filepath.Join(tmpDir, "decks"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// RevisionOption configures optional fields when creating a revision fixture.
type RevisionOption func(*revision.Revision)

// WithOverdue marks the fixture as pending and overdue by days.
func WithOverdue(days int) RevisionOption {
	return func(rev *revision.Revision) {
		rev.IsOverdue = true
		rev.DaysOverdue = days
		rev.IsCompleted = false
	}
}

// WithCompleted marks the fixture completed on the given day with a rating.
func WithCompleted(completedAt time.Time, rating revision.Rating) RevisionOption {
	return func(rev *revision.Revision) {
		completed := revision.NewDate(completedAt)
		rev.IsCompleted = true
		rev.CompletedDate = &completed
		rev.Rating = rating
	}
}

// WithFlashcard attaches flashcard content to the fixture.
func WithFlashcard(title, code string) RevisionOption {
	return func(rev *revision.Revision) {
		rev.FlashcardTitle = title
		rev.FlashcardCode = code
	}
}

// NewRevision creates a pending revision fixture scheduled on the given day.
func NewRevision(id, problemID int64, name string, scheduled time.Time, opts ...RevisionOption) revision.Revision {
	rev := revision.Revision{
		ID:             id,
		ProblemID:      problemID,
		RevisionNumber: 1,
		ScheduledDate:  revision.NewDate(scheduled),
		ProblemName:    name,
		Category:       "Arrays",
		Link:           "https://leetcode.com/problems/example",
	}
	for _, opt := range opts {
		opt(&rev)
	}
	return rev
}
