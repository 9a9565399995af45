// Package autosave persists the working draft to disk on a debounce, so
// a crash or killed terminal loses at most a few seconds of typing.
package autosave

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Saver coalesces bursts of edits into one write. Notify is cheap and
// safe to call on every keystroke; the caller hands over the rendered
// draft, so the background write never touches the live document.
type Saver struct {
	path     string
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	content string
	seq     uint64
	pending bool
	running bool

	// wmu serializes the actual file writes; written is the seq of the
	// last content on disk, guarded by wmu. A timer write and a Flush
	// can race to the same temp file otherwise, and a slow stale write
	// must never land over a newer one.
	wmu     sync.Mutex
	written uint64
}

// New returns a Saver writing to path. A nil Saver is valid and does
// nothing, so callers can hold one unconditionally.
func New(path string, debounce time.Duration) *Saver {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Saver{path: path, debounce: debounce}
}

// Notify records the latest draft content and (re)arms the debounce
// timer.
func (s *Saver) Notify(content string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.content = content
	s.seq++
	s.pending = true
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, s.onTimer)
		s.mu.Unlock()
		return
	}
	s.timer.Reset(s.debounce)
	s.mu.Unlock()
}

func (s *Saver) onTimer() {
	s.mu.Lock()
	if s.running {
		// A write is in flight; come back for the pending content.
		if s.timer != nil {
			s.timer.Reset(s.debounce)
		}
		s.mu.Unlock()
		return
	}
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.running = true
	content := s.content
	seq := s.seq
	s.mu.Unlock()

	// Best-effort: autosave errors are intentionally dropped. The live
	// document is still in memory and publish is the durable path.
	_ = s.write(seq, content)

	s.mu.Lock()
	s.running = false
	if s.pending && s.timer != nil {
		s.timer.Reset(s.debounce)
	}
	s.mu.Unlock()
}

// Flush writes the last notified content immediately, regardless of the
// timer. Called on clean shutdown. A Saver that was never notified
// leaves any previous autosave alone.
func (s *Saver) Flush() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
	content := s.content
	seq := s.seq
	s.mu.Unlock()
	if seq == 0 {
		return nil
	}
	return s.write(seq, content)
}

func (s *Saver) write(seq uint64, content string) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if seq <= s.written {
		// Already on disk, or a newer write beat this one.
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	// Write-then-rename so a crash mid-write never truncates the
	// previous autosave.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.written = seq
	return nil
}
