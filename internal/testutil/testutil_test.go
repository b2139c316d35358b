package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shardul37/AlgoRecall/internal/config"
	"github.com/Shardul37/AlgoRecall/internal/revision"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "http://127.0.0.1:18000")

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:18000")

	// The generated file must load cleanly through the config package.
	cfg, err := config.Load(got)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:18000", cfg.Server.BaseURL)
	assert.Equal(t, filepath.Join(tmpDir, "journal.db"), cfg.Journal.Path)
	assert.Equal(t, filepath.Join(tmpDir, "decks"), cfg.Exports.DeckDirectory)
}

func TestNewRevision(t *testing.T) {
	scheduled := time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC)

	plain := NewRevision(1, 2, "Two Sum", scheduled)
	assert.Equal(t, int64(1), plain.ID)
	assert.Equal(t, int64(2), plain.ProblemID)
	assert.Equal(t, "2025-10-24", plain.ScheduledDate.Format("2006-01-02"))
	assert.False(t, plain.IsCompleted)
	assert.False(t, plain.IsOverdue)

	overdue := NewRevision(1, 2, "Two Sum", scheduled, WithOverdue(4))
	assert.True(t, overdue.IsOverdue)
	assert.Equal(t, 4, overdue.DaysOverdue)

	completed := NewRevision(1, 2, "Two Sum", scheduled,
		WithCompleted(scheduled.AddDate(0, 0, 1), revision.RatingMastered))
	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.CompletedDate)
	assert.Equal(t, "2025-10-25", completed.CompletedDate.Format("2006-01-02"))
	assert.Equal(t, revision.RatingMastered, completed.Rating)

	flashcard := NewRevision(1, 2, "Two Sum", scheduled, WithFlashcard("Hash map complement lookup", "seen[target-n] = i"))
	assert.Equal(t, "Hash map complement lookup", flashcard.FlashcardTitle)
	assert.Equal(t, "seen[target-n] = i", flashcard.FlashcardCode)
}
