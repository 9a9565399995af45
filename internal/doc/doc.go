package doc

import "strings"

// Document is the ordered block tree owned by one authoring session.
// All structural edits go through methods on Document so the tree stays
// well-formed: inline spans only ever live inside a block, list items are
// span sequences, and removing a block never leaves dangling content.
type Document struct {
	blocks []Block
}

type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindBulletList
	KindOrderedList
	KindBlockquote
	KindCodeBlock
	KindTable
	KindImage
)

func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindBulletList:
		return "bulletList"
	case KindOrderedList:
		return "orderedList"
	case KindBlockquote:
		return "blockquote"
	case KindCodeBlock:
		return "codeBlock"
	case KindTable:
		return "table"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Mark is a bitmask of inline formatting applied to a span.
type Mark uint8

const (
	MarkBold Mark = 1 << iota
	MarkItalic
	MarkStrike
	MarkCode
)

func (m Mark) Has(flag Mark) bool { return m&flag != 0 }

// Inline is a run of text with uniform marks. Href, when set, makes the
// span a link.
type Inline struct {
	Text  string
	Marks Mark
	Href  string
}

// Block is one node of the document tree. Fields are used per kind:
// Spans for paragraph/heading/blockquote, Items for lists, Code/Lang for
// code blocks, Rows for tables, Src/Alt for images.
type Block struct {
	Kind      BlockKind
	Level     int // heading level, 1..3
	Spans     []Inline
	Items     [][]Inline
	Code      string
	Lang      string
	Rows      [][]string
	HeaderRow bool
	Src       string
	Alt       string
}

func New() *Document {
	// Start with a single empty paragraph so there is always a block to
	// type into (mirrors an empty editor surface).
	return &Document{blocks: []Block{{Kind: KindParagraph}}}
}

func FromBlocks(blocks []Block) *Document {
	d := &Document{blocks: blocks}
	if len(d.blocks) == 0 {
		d.blocks = []Block{{Kind: KindParagraph}}
	}
	return d
}

func (d *Document) Len() int { return len(d.blocks) }

func (d *Document) Block(i int) *Block {
	if i < 0 || i >= len(d.blocks) {
		return nil
	}
	return &d.blocks[i]
}

// Blocks returns the underlying block slice. Callers must not mutate it;
// use the structural operations instead.
func (d *Document) Blocks() []Block { return d.blocks }

// Kinds returns the ordered block-kind sequence, for structural comparison.
func (d *Document) Kinds() []BlockKind {
	out := make([]BlockKind, len(d.blocks))
	for i := range d.blocks {
		out[i] = d.blocks[i].Kind
	}
	return out
}

func (d *Document) Append(b Block) int {
	d.blocks = append(d.blocks, b)
	return len(d.blocks) - 1
}

func (d *Document) InsertAt(i int, b Block) {
	if i < 0 {
		i = 0
	}
	if i > len(d.blocks) {
		i = len(d.blocks)
	}
	d.blocks = append(d.blocks, Block{})
	copy(d.blocks[i+1:], d.blocks[i:])
	d.blocks[i] = b
}

func (d *Document) RemoveAt(i int) {
	if i < 0 || i >= len(d.blocks) {
		return
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	if len(d.blocks) == 0 {
		d.blocks = []Block{{Kind: KindParagraph}}
	}
}

// Clone deep-copies the tree. Draft snapshots rely on this so later edits
// to the live document cannot leak into a captured draft.
func (d *Document) Clone() *Document {
	out := &Document{blocks: make([]Block, len(d.blocks))}
	for i, b := range d.blocks {
		out.blocks[i] = cloneBlock(b)
	}
	return out
}

func cloneBlock(b Block) Block {
	nb := b
	nb.Spans = append([]Inline(nil), b.Spans...)
	if b.Items != nil {
		nb.Items = make([][]Inline, len(b.Items))
		for i, it := range b.Items {
			nb.Items[i] = append([]Inline(nil), it...)
		}
	}
	if b.Rows != nil {
		nb.Rows = make([][]string, len(b.Rows))
		for i, r := range b.Rows {
			nb.Rows[i] = append([]string(nil), r...)
		}
	}
	return nb
}

// PlainText flattens the tree into its plain-text projection. Single pass
// over the blocks; word counting and summary derivation both build on it.
func (d *Document) PlainText() string {
	var sb strings.Builder
	first := true
	writeBlock := func(s string) {
		if s == "" {
			return
		}
		if !first {
			sb.WriteString("\n")
		}
		sb.WriteString(s)
		first = false
	}
	for _, b := range d.blocks {
		switch b.Kind {
		case KindParagraph, KindHeading, KindBlockquote:
			writeBlock(spansText(b.Spans))
		case KindBulletList, KindOrderedList:
			var lines []string
			for _, it := range b.Items {
				if t := spansText(it); t != "" {
					lines = append(lines, t)
				}
			}
			writeBlock(strings.Join(lines, "\n"))
		case KindCodeBlock:
			writeBlock(strings.TrimRight(b.Code, "\n"))
		case KindTable:
			var lines []string
			for _, r := range b.Rows {
				lines = append(lines, strings.Join(r, " "))
			}
			writeBlock(strings.Join(lines, "\n"))
		case KindImage:
			writeBlock(b.Alt)
		}
	}
	return sb.String()
}

// RuneCount is the length of the plain-text projection in runes. The
// editor's "word count" counts characters, not words.
func (d *Document) RuneCount() int {
	return len([]rune(d.PlainText()))
}

func spansText(spans []Inline) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// SpanText is spansText for callers outside the package.
func SpanText(spans []Inline) string { return spansText(spans) }

// Text is a convenience constructor for an unmarked span sequence.
func Text(s string) []Inline {
	if s == "" {
		return nil
	}
	return []Inline{{Text: s}}
}
