package editor

import "inkwell/internal/doc"

// Text editing against the current block. Paragraphs, headings and
// blockquotes edit their last span; lists edit the last item; code blocks
// edit the code buffer. Tables and images carry no editable text here.

func (e *Editor) blockText() string {
	b := e.doc.Block(e.cur)
	if b == nil {
		return ""
	}
	switch b.Kind {
	case doc.KindCodeBlock:
		return b.Code
	case doc.KindBulletList, doc.KindOrderedList:
		if len(b.Items) == 0 {
			return ""
		}
		return doc.SpanText(b.Items[len(b.Items)-1])
	default:
		return doc.SpanText(b.Spans)
	}
}

func (e *Editor) blockTextLen() int {
	return len([]rune(e.blockText()))
}

func (e *Editor) appendRune(r rune) {
	b := e.doc.Block(e.cur)
	if b == nil {
		return
	}
	switch b.Kind {
	case doc.KindCodeBlock:
		b.Code += string(r)
	case doc.KindBulletList, doc.KindOrderedList:
		if len(b.Items) == 0 {
			b.Items = append(b.Items, nil)
		}
		b.Items[len(b.Items)-1] = appendToSpans(b.Items[len(b.Items)-1], r)
	case doc.KindTable, doc.KindImage:
		// Not text-editable through the cursor; typing starts a new
		// paragraph below instead.
		e.doc.InsertAt(e.cur+1, doc.Block{Kind: doc.KindParagraph, Spans: doc.Text(string(r))})
		e.cur++
	default:
		b.Spans = appendToSpans(b.Spans, r)
	}
}

func (e *Editor) deleteLastRune() {
	b := e.doc.Block(e.cur)
	if b == nil {
		return
	}
	switch b.Kind {
	case doc.KindCodeBlock:
		b.Code = trimLastRune(b.Code)
	case doc.KindBulletList, doc.KindOrderedList:
		if len(b.Items) == 0 {
			return
		}
		last := len(b.Items) - 1
		b.Items[last] = trimSpans(b.Items[last])
	default:
		b.Spans = trimSpans(b.Spans)
	}
}

// truncateBlockText cuts the current block's text to n runes. Used to
// delete the palette trigger range.
func (e *Editor) truncateBlockText(n int) {
	for e.blockTextLen() > n {
		e.deleteLastRune()
	}
}

func appendToSpans(spans []doc.Inline, r rune) []doc.Inline {
	// Extend the last unmarked span where possible; otherwise start one.
	if n := len(spans); n > 0 && spans[n-1].Marks == 0 && spans[n-1].Href == "" {
		spans[n-1].Text += string(r)
		return spans
	}
	return append(spans, doc.Inline{Text: string(r)})
}

func trimSpans(spans []doc.Inline) []doc.Inline {
	n := len(spans)
	if n == 0 {
		return spans
	}
	spans[n-1].Text = trimLastRune(spans[n-1].Text)
	if spans[n-1].Text == "" {
		return spans[:n-1]
	}
	return spans
}

func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
