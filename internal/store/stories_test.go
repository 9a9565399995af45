package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"inkwell/internal/publish"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndGet(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()

	added, err := s.Add(ctx, Story{
		Title:    "First",
		Content:  "# First\n\nbody",
		CoverImg: "https://img.test/a.png",
		Category: "1",
		Summary:  "body",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" || added.CreatedAt.IsZero() {
		t.Fatalf("add did not fill id/created: %+v", added)
	}

	got, err := s.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "First" || got.Content != "# First\n\nbody" || got.CoverImg != "https://img.test/a.png" {
		t.Fatalf("got = %+v", got)
	}
	if !got.CreatedAt.Equal(added.CreatedAt) {
		t.Fatalf("created_at round trip: %v vs %v", got.CreatedAt, added.CreatedAt)
	}
}

func TestGet_Missing(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	_, err := s.Get(context.Background(), "no-such-id")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v", err)
	}
}

func TestList_NewestFirst(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "mid", "new"} {
		_, err := s.Add(ctx, Story{
			Title:     title,
			Content:   title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].Title != "new" || list[2].Title != "old" {
		t.Fatalf("order = %s, %s, %s", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestPublish_WritesSubmission(t *testing.T) {
	t.Parallel()

	s := openTest(t)
	ctx := context.Background()

	var p publish.Publisher = s
	err := p.Publish(ctx, publish.Submission{
		Title:    "Via API",
		Content:  "words",
		Category: "1",
		Summary:  "words",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Via API" || list[0].Category != "1" {
		t.Fatalf("list = %+v", list)
	}
}

func TestOpen_Reopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	s, err := Open(ctx, dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Add(ctx, Story{Title: "kept", Content: "kept"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s2, err := Open(ctx, dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	list, err := s2.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "kept" {
		t.Fatalf("data lost across reopen: %+v", list)
	}
}
