package editor

import "inkwell/internal/doc"

// palette.Target implementation. Each transform applies to the current
// block and refreshes the word count.

func (e *Editor) DeleteTriggerRange() {
	if e.trigger < 0 {
		return
	}
	e.truncateBlockText(e.trigger)
	e.trigger = -1
	e.touch()
}

func (e *Editor) SetParagraph() {
	e.doc.SetParagraph(e.cur)
	e.touch()
}

func (e *Editor) ToggleHeading(level int) {
	e.doc.ToggleHeading(e.cur, level)
	e.touch()
}

func (e *Editor) ToggleBulletList() {
	e.doc.ToggleBulletList(e.cur)
	e.touch()
}

func (e *Editor) ToggleOrderedList() {
	e.doc.ToggleOrderedList(e.cur)
	e.touch()
}

func (e *Editor) ToggleBlockquote() {
	e.doc.ToggleBlockquote(e.cur)
	e.touch()
}

func (e *Editor) ToggleCodeBlock() {
	e.doc.ToggleCodeBlock(e.cur)
	e.touch()
}

func (e *Editor) InsertTable(rows, cols int) {
	at := e.doc.InsertTable(e.cur, rows, cols)
	// Land on a fresh paragraph below the table so typing continues.
	e.doc.InsertAt(at+1, doc.Block{Kind: doc.KindParagraph})
	e.cur = at + 1
	e.touch()
}

func (e *Editor) InsertImage(src string) {
	at := e.doc.InsertImage(e.cur, src, "")
	e.doc.InsertAt(at+1, doc.Block{Kind: doc.KindParagraph})
	e.cur = at + 1
	e.touch()
}
