// Package session tracks live editing-session metrics: the word count
// derived from the document and the elapsed-edit-time label derived from
// the wall clock.
package session

import (
	"fmt"
	"sync"
	"time"
)

// Session lives for one editor mount. The word count is pushed
// synchronously after every document mutation; the elapsed label is
// pulled on a timer tick, never per keystroke.
type Session struct {
	startedAt time.Time
	wordCount int
}

func New(now time.Time) *Session {
	return &Session{startedAt: now}
}

func (s *Session) StartedAt() time.Time { return s.startedAt }

func (s *Session) SetWordCount(n int) {
	if n < 0 {
		n = 0
	}
	s.wordCount = n
}

func (s *Session) WordCount() int { return s.wordCount }

// ElapsedLabel formats the time since the session started. Below an hour
// it renders whole minutes; at or above, hours plus remaining minutes.
func (s *Session) ElapsedLabel(now time.Time) string {
	return FormatElapsed(now.Sub(s.startedAt))
}

func FormatElapsed(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// Watch runs fn with a fresh elapsed label on every interval tick until
// the returned stop func is called. Stop is idempotent and must be called
// when the session ends so the ticker does not outlive it. Hosts with
// their own event loop (the TUI) can skip Watch and call ElapsedLabel from
// their tick instead.
func (s *Session) Watch(interval time.Duration, fn func(label string)) (stop func()) {
	done := make(chan struct{})
	var once sync.Once
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-t.C:
				fn(s.ElapsedLabel(now))
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}
