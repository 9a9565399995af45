// Package store persists published stories locally. It is the storage
// collaborator behind the Publish API when no remote service is
// configured: stories are stored in their Markdown representation and
// re-rendered as rich content on read.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"inkwell/internal/publish"
)

type Story struct {
	ID        string
	Title     string
	Content   string // Markdown representation
	CoverImg  string
	Category  string
	Summary   string
	CreatedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the story database under dir.
func Open(ctx context.Context, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", filepath.Join(dir, "stories.sqlite"))
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when a second process reads.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stories (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			cover_img TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_stories_created_at ON stories(created_at);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Add inserts a story, filling ID and CreatedAt when unset.
func (s *Store) Add(ctx context.Context, st Story) (Story, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO stories (id, title, content, cover_img, category, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		st.ID, st.Title, st.Content, st.CoverImg, st.Category, st.Summary,
		st.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Story{}, fmt.Errorf("add story: %w", err)
	}
	return st, nil
}

func (s *Store) Get(ctx context.Context, id string) (Story, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, cover_img, category, summary, created_at
		 FROM stories WHERE id = ?`, id)
	st, err := scanStory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Story{}, fmt.Errorf("story not found: %s", id)
	}
	return st, err
}

func (s *Store) List(ctx context.Context) ([]Story, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, cover_img, category, summary, created_at
		 FROM stories ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Story
	for rows.Next() {
		st, err := scanStory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStory(r rowScanner) (Story, error) {
	var st Story
	var created string
	if err := r.Scan(&st.ID, &st.Title, &st.Content, &st.CoverImg, &st.Category, &st.Summary, &created); err != nil {
		return Story{}, err
	}
	if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
		st.CreatedAt = t
	}
	return st, nil
}

// Publish implements publish.Publisher by writing the submission to the
// local database, so the CLI can publish without a remote service.
func (s *Store) Publish(ctx context.Context, sub publish.Submission) error {
	_, err := s.Add(ctx, Story{
		Title:    sub.Title,
		Content:  sub.Content,
		CoverImg: sub.CoverImg,
		Category: sub.Category,
		Summary:  sub.Summary,
	})
	return err
}
