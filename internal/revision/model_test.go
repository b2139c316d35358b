package revision

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     time.Time
		wantErr  bool
		wantJSON string
	}{
		{
			name:     "date format",
			input:    `"2025-10-24"`,
			want:     time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC),
			wantJSON: `"2025-10-24"`,
		},
		{
			name:     "RFC3339 timestamp",
			input:    `"2025-10-24T15:04:05Z"`,
			want:     time.Date(2025, 10, 24, 15, 4, 5, 0, time.UTC),
			wantJSON: `"2025-10-24"`,
		},
		{
			name:  "null",
			input: `null`,
			want:  time.Time{},
		},
		{
			name:    "garbage",
			input:   `"24/10/2025"`,
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tc.input), &d)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(d.Time))

			if tc.wantJSON != "" {
				got, err := json.Marshal(d)
				require.NoError(t, err)
				assert.Equal(t, tc.wantJSON, string(got))
			}
		})
	}
}

func TestDate_YAML(t *testing.T) {
	d := NewDate(time.Date(2025, 11, 2, 13, 30, 0, 0, time.UTC))
	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-02\n", string(out))

	var parsed Date
	require.NoError(t, yaml.Unmarshal(out, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestRating_Valid(t *testing.T) {
	assert.True(t, RatingForgot.Valid())
	assert.True(t, RatingStruggled.Valid())
	assert.True(t, RatingMastered.Valid())
	assert.False(t, Rating(0).Valid())
	assert.False(t, Rating(4).Valid())
}

func TestRevision_OverdueOn(t *testing.T) {
	today := time.Date(2025, 10, 24, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		scheduled       time.Time
		isCompleted     bool
		wantOverdue     bool
		wantDaysOverdue int
	}{
		{
			name:            "scheduled yesterday and pending",
			scheduled:       time.Date(2025, 10, 23, 0, 0, 0, 0, time.UTC),
			wantOverdue:     true,
			wantDaysOverdue: 1,
		},
		{
			name:            "scheduled a week ago and pending",
			scheduled:       time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
			wantOverdue:     true,
			wantDaysOverdue: 7,
		},
		{
			name:        "scheduled today",
			scheduled:   time.Date(2025, 10, 24, 0, 0, 0, 0, time.UTC),
			wantOverdue: false,
		},
		{
			name:        "scheduled tomorrow",
			scheduled:   time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC),
			wantOverdue: false,
		},
		{
			name:        "completed revision is never overdue",
			scheduled:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			isCompleted: true,
			wantOverdue: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rev := Revision{
				ScheduledDate: NewDate(tc.scheduled),
				IsCompleted:   tc.isCompleted,
			}
			assert.Equal(t, tc.wantOverdue, rev.OverdueOn(today))
			assert.Equal(t, tc.wantDaysOverdue, rev.DaysOverdueOn(today))
		})
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name            string
		draft           ProblemDraft
		wantErr         bool
		wantErrContains string
	}{
		{
			name: "valid with required fields only",
			draft: ProblemDraft{
				Name:     "Two Sum",
				Link:     "https://leetcode.com/problems/two-sum",
				Category: "Arrays",
			},
		},
		{
			name: "valid with flashcard fields",
			draft: ProblemDraft{
				Name:           "LRU Cache",
				Link:           "https://leetcode.com/problems/lru-cache",
				Category:       "Linked List",
				Question:       "Design a data structure for an LRU cache.",
				FlashcardTitle: "LRU eviction",
				FlashcardCode:  "type LRUCache struct{}",
			},
		},
		{
			name: "missing name",
			draft: ProblemDraft{
				Link:     "https://leetcode.com/problems/two-sum",
				Category: "Arrays",
			},
			wantErr:         true,
			wantErrContains: "name",
		},
		{
			name: "link is not a URL",
			draft: ProblemDraft{
				Name:     "Two Sum",
				Link:     "not a url",
				Category: "Arrays",
			},
			wantErr:         true,
			wantErrContains: "link",
		},
		{
			name: "free-text category is rejected",
			draft: ProblemDraft{
				Name:     "Two Sum",
				Link:     "https://leetcode.com/problems/two-sum",
				Category: "Puzzles",
			},
			wantErr:         true,
			wantErrContains: "category must be one of",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDraft(tc.draft)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErrContains)
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, ValidCategory(category))
	}
	assert.False(t, ValidCategory("Puzzles"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("arrays"))
}
