package doc

// Structural transforms used by the command palette. Each operates on one
// block in place and keeps the block's textual content where the target
// kind can carry it.

// SetParagraph converts block i to a plain paragraph.
func (d *Document) SetParagraph(i int) {
	b := d.Block(i)
	if b == nil {
		return
	}
	*b = Block{Kind: KindParagraph, Spans: blockSpans(*b)}
}

// ToggleHeading sets block i to a heading of the given level, or back to a
// paragraph when it already is one at that level. Level clamps to 1..3.
func (d *Document) ToggleHeading(i, level int) {
	b := d.Block(i)
	if b == nil {
		return
	}
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	if b.Kind == KindHeading && b.Level == level {
		*b = Block{Kind: KindParagraph, Spans: b.Spans}
		return
	}
	*b = Block{Kind: KindHeading, Level: level, Spans: blockSpans(*b)}
}

// ToggleBulletList converts block i to a single-item bullet list, or back
// to a paragraph. Toggling an ordered list switches the list kind and
// keeps the items.
func (d *Document) ToggleBulletList(i int) { d.toggleList(i, KindBulletList) }

// ToggleOrderedList converts block i to a single-item ordered list, or
// back to a paragraph. Toggling a bullet list switches the list kind.
func (d *Document) ToggleOrderedList(i int) { d.toggleList(i, KindOrderedList) }

func (d *Document) toggleList(i int, kind BlockKind) {
	b := d.Block(i)
	if b == nil {
		return
	}
	other := KindOrderedList
	if kind == KindOrderedList {
		other = KindBulletList
	}
	switch b.Kind {
	case kind:
		// Collapse back to a paragraph joining the items.
		var spans []Inline
		for _, it := range b.Items {
			spans = append(spans, it...)
		}
		*b = Block{Kind: KindParagraph, Spans: spans}
	case other:
		b.Kind = kind
	default:
		*b = Block{Kind: kind, Items: [][]Inline{blockSpans(*b)}}
	}
}

// ToggleBlockquote converts block i to a blockquote or back.
func (d *Document) ToggleBlockquote(i int) {
	b := d.Block(i)
	if b == nil {
		return
	}
	if b.Kind == KindBlockquote {
		b.Kind = KindParagraph
		return
	}
	*b = Block{Kind: KindBlockquote, Spans: blockSpans(*b)}
}

// ToggleCodeBlock converts block i to a fenced code block holding the
// block's text, or back to a paragraph holding the code.
func (d *Document) ToggleCodeBlock(i int) {
	b := d.Block(i)
	if b == nil {
		return
	}
	if b.Kind == KindCodeBlock {
		*b = Block{Kind: KindParagraph, Spans: Text(b.Code)}
		return
	}
	*b = Block{Kind: KindCodeBlock, Code: SpanText(blockSpans(*b))}
}

// InsertTable inserts a rows×cols table after block i and returns the new
// block's index. The first row is the header row.
func (d *Document) InsertTable(i, rows, cols int) int {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	table := Block{Kind: KindTable, HeaderRow: true, Rows: make([][]string, rows)}
	for r := range table.Rows {
		table.Rows[r] = make([]string, cols)
	}
	at := i + 1
	d.InsertAt(at, table)
	return at
}

// InsertImage inserts an image block after block i and returns its index.
func (d *Document) InsertImage(i int, src, alt string) int {
	at := i + 1
	d.InsertAt(at, Block{Kind: KindImage, Src: src, Alt: alt})
	return at
}

// blockSpans extracts whatever textual content a block carries, for
// conversion into a span-bearing kind.
func blockSpans(b Block) []Inline {
	switch b.Kind {
	case KindParagraph, KindHeading, KindBlockquote:
		return b.Spans
	case KindBulletList, KindOrderedList:
		var spans []Inline
		for _, it := range b.Items {
			spans = append(spans, it...)
		}
		return spans
	case KindCodeBlock:
		return Text(b.Code)
	default:
		return nil
	}
}
