// Package journal keeps a local audit log of completed revisions in a sqlite
// file. It is written after a completion succeeds on the server and read by
// the log command; the store never reads it, so it cannot drift into a cache.
package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

// Entry is one recorded completion.
type Entry struct {
	ID          int64     `db:"id"`
	RevisionID  int64     `db:"revision_id"`
	ProblemID   int64     `db:"problem_id"`
	ProblemName string    `db:"problem_name"`
	Category    string    `db:"category"`
	Rating      int       `db:"rating"`
	CompletedAt time.Time `db:"completed_at"`
}

// RatingCount is the number of completions recorded with one rating.
type RatingCount struct {
	Rating int `db:"rating"`
	Count  int `db:"count"`
}

// Journal is a sqlite-backed completion log.
type Journal struct {
	db *sqlx.DB
}

// DefaultPath returns the journal location under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("os.UserHomeDir() > %w", err)
	}
	return filepath.Join(home, ".algorecall", "journal.db"), nil
}

// Open opens or creates the journal file and its schema.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS completions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		revision_id INTEGER NOT NULL,
		problem_id INTEGER NOT NULL,
		problem_name TEXT NOT NULL,
		category TEXT NOT NULL,
		rating INTEGER NOT NULL,
		completed_at TIMESTAMP NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Exec(create completions) > %w", err)
	}

	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends a completion for the given revision.
func (j *Journal) Record(ctx context.Context, rev revision.Revision, rating revision.Rating, completedAt time.Time) error {
	if _, err := j.db.ExecContext(ctx,
		`INSERT INTO completions (revision_id, problem_id, problem_name, category, rating, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rev.ID, rev.ProblemID, rev.ProblemName, rev.Category, int(rating), completedAt,
	); err != nil {
		return fmt.Errorf("db.ExecContext(insert completion) > %w", err)
	}
	return nil
}

// Recent returns the newest completions first, at most limit of them.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	if err := j.db.SelectContext(ctx, &entries,
		"SELECT * FROM completions ORDER BY completed_at DESC, id DESC LIMIT ?", limit,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(completions) > %w", err)
	}
	return entries, nil
}

// CountByRating returns completion counts grouped by rating, ascending.
func (j *Journal) CountByRating(ctx context.Context) ([]RatingCount, error) {
	var counts []RatingCount
	if err := j.db.SelectContext(ctx, &counts,
		"SELECT rating, COUNT(*) AS count FROM completions GROUP BY rating ORDER BY rating",
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(completions by rating) > %w", err)
	}
	return counts, nil
}
