package editor

import (
	"strings"

	"inkwell/internal/convert"
	"inkwell/internal/detect"
	"inkwell/internal/doc"
)

// PastePrompt is a suspended paste: the text looked like Markdown, so the
// default insertion is held until the user chooses a branch. Exactly one
// of AcceptFormatted/KeepPlain should be called; dropping the prompt
// leaves the document unchanged.
type PastePrompt struct {
	Text    string
	Pattern string // winning detector pattern, for diagnostics
	ed      *Editor
}

// Paste routes pasted plain text through the format detector. A negative
// classification inserts immediately and returns nil; a positive one
// suspends the paste and returns a prompt.
func (e *Editor) Paste(text string) *PastePrompt {
	if ok, pattern := detect.Classify(text); ok {
		return &PastePrompt{Text: text, Pattern: pattern, ed: e}
	}
	e.insertPlain(text)
	return nil
}

// KeepPlain inserts the original text unmodified.
func (p *PastePrompt) KeepPlain() {
	p.ed.insertPlain(p.Text)
}

// AcceptFormatted converts the text and inserts the resulting blocks. A
// conversion failure falls back to inserting the raw text; the paste
// never fails as a whole.
func (p *PastePrompt) AcceptFormatted() {
	d, err := convert.MarkdownToDoc(p.Text)
	if err != nil {
		p.ed.insertPlain(p.Text)
		return
	}
	p.ed.insertBlocks(d.Blocks())
}

func (e *Editor) insertPlain(text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			e.doc.InsertAt(e.cur+1, doc.Block{Kind: doc.KindParagraph})
			e.cur++
		}
		for _, r := range line {
			e.appendRune(r)
		}
	}
	e.touch()
}

func (e *Editor) insertBlocks(blocks []doc.Block) {
	at := e.cur
	// An empty current paragraph is replaced instead of left behind.
	// Insert first, then remove it: removing first can empty the
	// document, which re-seeds a fresh paragraph and leaves a stray
	// block behind.
	b := e.doc.Block(at)
	replaceEmpty := b != nil && b.Kind == doc.KindParagraph && len(b.Spans) == 0
	for _, nb := range blocks {
		at++
		e.doc.InsertAt(at, nb)
	}
	if replaceEmpty && len(blocks) > 0 {
		e.doc.RemoveAt(e.cur)
		at--
	}
	if at >= e.doc.Len() {
		at = e.doc.Len() - 1
	}
	if at < 0 {
		at = 0
	}
	e.cur = at
	e.touch()
}
