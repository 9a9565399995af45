// Package editor owns the live document for one authoring session and
// composes the palette, the paste-format pipeline, and the session
// metrics. It is the surface the hosting app talks to.
package editor

import (
	"strings"
	"time"

	"inkwell/internal/doc"
	"inkwell/internal/palette"
	"inkwell/internal/publish"
	"inkwell/internal/session"
)

// Editor holds the document tree exclusively; the palette and converter
// operate on the live tree or on handed-in strings, never on copies of
// their own.
//
// The cursor model is block-based: there is one current block and typing
// appends to the end of its text. That is all the palette and paste
// pipeline need.
type Editor struct {
	doc  *doc.Document
	cur  int
	sess *session.Session
	pal  *palette.Palette

	title    string
	coverURL string

	// trigger is the rune offset of the slash in the current block's
	// text while the palette is open, -1 otherwise.
	trigger int
}

func New(now time.Time) *Editor {
	return &Editor{
		doc:     doc.New(),
		sess:    session.New(now),
		pal:     palette.New(palette.DefaultCommands()),
		trigger: -1,
	}
}

func (e *Editor) Doc() *doc.Document         { return e.doc }
func (e *Editor) Session() *session.Session  { return e.sess }
func (e *Editor) Palette() *palette.Palette  { return e.pal }
func (e *Editor) CurrentIndex() int          { return e.cur }
func (e *Editor) Title() string              { return e.title }
func (e *Editor) CoverURL() string           { return e.coverURL }
func (e *Editor) SetTitle(t string)          { e.title = t }
func (e *Editor) SetCover(url string)        { e.coverURL = url }

// touch is called after every document mutation to keep the word count
// in sync. It is a single plain-text pass, cheap enough to run per edit.
func (e *Editor) touch() {
	e.sess.SetWordCount(e.doc.RuneCount())
}

// InsertText appends typed text to the current block. A slash typed while
// the palette is closed opens it; while it is open, further typed text
// extends the query (the query text lives in the document until the
// trigger range is deleted or the palette is dismissed).
func (e *Editor) InsertText(s string) {
	for _, r := range s {
		if r == '/' && !e.pal.IsOpen() {
			e.trigger = e.blockTextLen()
			e.pal.Open()
		}
		e.appendRune(r)
	}
	e.syncQuery()
	e.touch()
}

// Backspace deletes the last rune of the current block. Deleting past the
// trigger character loses the slash context and closes the palette.
func (e *Editor) Backspace() {
	e.deleteLastRune()
	if e.pal.IsOpen() && e.blockTextLen() <= e.trigger {
		e.ClosePalette()
	}
	e.syncQuery()
	e.touch()
}

// Newline starts a new paragraph after the current block. Inside a code
// block it inserts a literal newline; on a list it adds a new item.
func (e *Editor) Newline() {
	if e.pal.IsOpen() {
		e.ClosePalette()
	}
	b := e.doc.Block(e.cur)
	if b == nil {
		return
	}
	switch b.Kind {
	case doc.KindCodeBlock:
		b.Code += "\n"
	case doc.KindBulletList, doc.KindOrderedList:
		b.Items = append(b.Items, nil)
	default:
		e.doc.InsertAt(e.cur+1, doc.Block{Kind: doc.KindParagraph})
		e.cur++
	}
	e.touch()
}

// SetCurrent moves the cursor block. Any open palette loses its context.
func (e *Editor) SetCurrent(i int) {
	if i < 0 || i >= e.doc.Len() {
		return
	}
	if e.pal.IsOpen() {
		e.ClosePalette()
	}
	e.cur = i
}

// PaletteMove forwards selection movement while the palette is open.
func (e *Editor) PaletteMove(dir palette.Direction) { e.pal.Move(dir) }

// ConfirmPalette executes the selected command against this editor. A
// non-nil return is a pending input request (see palette.PendingInput);
// the trigger range is already gone at that point.
func (e *Editor) ConfirmPalette() *palette.PendingInput {
	pending := e.pal.Confirm(e)
	e.touch()
	return pending
}

// ClosePalette dismisses the palette without touching the document; the
// typed slash and query remain as plain text.
func (e *Editor) ClosePalette() {
	e.pal.Close()
	e.trigger = -1
}

// UserInputProvider supplies a line of text for commands that prompt
// (image URL entry). Returning ok=false means the user declined, which is
// a normal outcome: the command simply inserts nothing.
type UserInputProvider interface {
	PromptForText(label string) (string, bool)
}

// ConfirmPaletteWith resolves any pending input through the provider, for
// hosts without their own dialog loop.
func (e *Editor) ConfirmPaletteWith(p UserInputProvider) {
	pending := e.ConfirmPalette()
	if pending == nil {
		return
	}
	if v, ok := p.PromptForText(pending.Label); ok && strings.TrimSpace(v) != "" {
		pending.Apply(v)
	}
}

// syncQuery mirrors the block text after the trigger into the palette
// query.
func (e *Editor) syncQuery() {
	if !e.pal.IsOpen() || e.trigger < 0 {
		return
	}
	text := []rune(e.blockText())
	if e.trigger+1 > len(text) {
		e.pal.SetQuery("")
		return
	}
	e.pal.SetQuery(string(text[e.trigger+1:]))
}

// Snapshot captures an immutable draft of the current content. The
// document is deep-cloned so later edits never reach the draft.
func (e *Editor) Snapshot() publish.Draft {
	clone := e.doc.Clone()
	return publish.Draft{
		Title:    e.title,
		Doc:      clone,
		Markup:   clone.Markup(),
		CoverURL: e.coverURL,
	}
}
