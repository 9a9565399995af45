package autosave

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNotify_WritesAfterDebounce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "draft.md")
	s := New(path, 20*time.Millisecond)

	s.Notify("# v1")
	s.Notify("# v2")
	s.Notify("# v3")

	deadline := time.Now().Add(2 * time.Second)
	for {
		b, err := os.ReadFile(path)
		if err == nil {
			if string(b) != "# v3" {
				t.Fatalf("autosave content = %q, want last notified", b)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("autosave never written: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestFlush_WritesImmediately(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "draft.md")
	s := New(path, time.Hour)
	s.Notify("content")
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "content" {
		t.Fatalf("content = %q", b)
	}
}

func TestFlush_ConcurrentWithTimerWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "draft.md")
	s := New(path, time.Millisecond)

	// Interleave timer-driven writes with explicit flushes; the file
	// must always end up holding the newest content, never a stale
	// write that lost the race.
	for i := 0; i < 50; i++ {
		s.Notify("v" + string(rune('0'+i%10)))
		if i%5 == 0 {
			if err := s.Flush(); err != nil {
				t.Fatalf("flush %d: %v", i, err)
			}
		}
		time.Sleep(time.Millisecond)
	}
	s.Notify("final")
	if err := s.Flush(); err != nil {
		t.Fatalf("final flush: %v", err)
	}

	// Give any straggling timer write time to fire; it must be a no-op.
	time.Sleep(20 * time.Millisecond)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "final" {
		t.Fatalf("content = %q, want newest write to win", b)
	}
}

func TestNilSaver_IsNoOp(t *testing.T) {
	t.Parallel()

	var s *Saver
	s.Notify("x")
	if err := s.Flush(); err != nil {
		t.Fatalf("nil flush: %v", err)
	}
}
