package convert

import (
	"strings"
	"testing"

	"inkwell/internal/doc"
)

func TestMarkdownToDoc_BlockCoverage(t *testing.T) {
	t.Parallel()

	md := strings.Join([]string{
		"# Title",
		"",
		"A paragraph with **bold**, *italic* and `code`.",
		"",
		"- first",
		"- second",
		"",
		"1. one",
		"2. two",
		"",
		"> a quote",
		"",
		"```go",
		"fmt.Println(\"hi\")",
		"```",
		"",
		"![alt text](https://example.com/img.png)",
	}, "\n")

	d, err := MarkdownToDoc(md)
	if err != nil {
		t.Fatalf("MarkdownToDoc: %v", err)
	}
	want := []doc.BlockKind{
		doc.KindHeading,
		doc.KindParagraph,
		doc.KindBulletList,
		doc.KindOrderedList,
		doc.KindBlockquote,
		doc.KindCodeBlock,
		doc.KindImage,
	}
	got := d.Kinds()
	if len(got) != len(want) {
		t.Fatalf("block kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("block %d = %s, want %s", i, got[i], want[i])
		}
	}

	h := d.Block(0)
	if h.Level != 1 || doc.SpanText(h.Spans) != "Title" {
		t.Fatalf("heading = level %d, text %q", h.Level, doc.SpanText(h.Spans))
	}

	bl := d.Block(2)
	if len(bl.Items) != 2 || doc.SpanText(bl.Items[0]) != "first" {
		t.Fatalf("bullet list items = %d, first %q", len(bl.Items), doc.SpanText(bl.Items[0]))
	}

	cb := d.Block(5)
	if cb.Lang != "go" || !strings.Contains(cb.Code, "fmt.Println") {
		t.Fatalf("code block lang=%q code=%q", cb.Lang, cb.Code)
	}

	img := d.Block(6)
	if img.Src != "https://example.com/img.png" || img.Alt != "alt text" {
		t.Fatalf("image src=%q alt=%q", img.Src, img.Alt)
	}
}

func TestMarkdownToDoc_InlineMarks(t *testing.T) {
	t.Parallel()

	d, err := MarkdownToDoc("**bold** *italic* ~~gone~~ [link](https://x.test) `code`")
	if err != nil {
		t.Fatalf("MarkdownToDoc: %v", err)
	}
	spans := d.Block(0).Spans

	find := func(text string) doc.Inline {
		for _, s := range spans {
			if s.Text == text {
				return s
			}
		}
		t.Fatalf("span %q not found in %+v", text, spans)
		return doc.Inline{}
	}
	if s := find("bold"); !s.Marks.Has(doc.MarkBold) {
		t.Fatalf("bold span marks = %v", s.Marks)
	}
	if s := find("italic"); !s.Marks.Has(doc.MarkItalic) {
		t.Fatalf("italic span marks = %v", s.Marks)
	}
	if s := find("gone"); !s.Marks.Has(doc.MarkStrike) {
		t.Fatalf("strike span marks = %v", s.Marks)
	}
	if s := find("link"); s.Href != "https://x.test" {
		t.Fatalf("link href = %q", s.Href)
	}
	if s := find("code"); !s.Marks.Has(doc.MarkCode) {
		t.Fatalf("code span marks = %v", s.Marks)
	}
}

func TestMarkdownToDoc_DeepHeadingClamps(t *testing.T) {
	t.Parallel()

	d, err := MarkdownToDoc("##### deep")
	if err != nil {
		t.Fatalf("MarkdownToDoc: %v", err)
	}
	if b := d.Block(0); b.Kind != doc.KindHeading || b.Level != 3 {
		t.Fatalf("got kind=%s level=%d, want heading level 3", b.Kind, b.Level)
	}
}

// Converting A→B→A must reproduce the same ordered block structure and
// inline marks, though not necessarily identical whitespace.
func TestRoundTrip_BlockStructure(t *testing.T) {
	t.Parallel()

	d := doc.FromBlocks([]doc.Block{
		{Kind: doc.KindHeading, Level: 1, Spans: doc.Text("My Story")},
		{Kind: doc.KindParagraph, Spans: []doc.Inline{
			{Text: "Once upon a "},
			{Text: "time", Marks: doc.MarkBold},
		}},
		{Kind: doc.KindBulletList, Items: [][]doc.Inline{
			doc.Text("one"),
			doc.Text("two"),
		}},
		{Kind: doc.KindCodeBlock, Lang: "sh", Code: "echo hi\n"},
	})

	md := DocToMarkdown(d)
	back, err := MarkdownToDoc(md)
	if err != nil {
		t.Fatalf("MarkdownToDoc: %v", err)
	}

	want := []doc.BlockKind{doc.KindHeading, doc.KindParagraph, doc.KindBulletList, doc.KindCodeBlock}
	got := back.Kinds()
	if len(got) != len(want) {
		t.Fatalf("round trip kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("round trip block %d = %s, want %s", i, got[i], want[i])
		}
	}
	if n := len(back.Block(2).Items); n != 2 {
		t.Fatalf("round trip list items = %d, want 2", n)
	}

	var bold *doc.Inline
	for i, s := range back.Block(1).Spans {
		if s.Marks.Has(doc.MarkBold) {
			bold = &back.Block(1).Spans[i]
		}
	}
	if bold == nil || bold.Text != "time" {
		t.Fatalf("bold span lost in round trip: %+v", back.Block(1).Spans)
	}

	// A second round trip must be stable.
	if md2 := DocToMarkdown(back); md2 != md {
		t.Fatalf("second round trip diverged:\n%q\nvs\n%q", md2, md)
	}
}

func TestDocToMarkdown_TableAndImage(t *testing.T) {
	t.Parallel()

	d := doc.FromBlocks([]doc.Block{
		{Kind: doc.KindTable, HeaderRow: true, Rows: [][]string{{"a", "b"}, {"1", "2"}}},
		{Kind: doc.KindImage, Src: "https://x.test/i.png", Alt: "pic"},
	})
	md := DocToMarkdown(d)
	for _, want := range []string{"| a | b |", "| --- | --- |", "| 1 | 2 |", "![pic](https://x.test/i.png)"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownToMarkup(t *testing.T) {
	t.Parallel()

	out, err := MarkdownToMarkup("# Hi\n\nsome **bold** text")
	if err != nil {
		t.Fatalf("MarkdownToMarkup: %v", err)
	}
	for _, want := range []string{"<h1>Hi</h1>", "<strong>bold</strong>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("markup missing %q:\n%s", want, out)
		}
	}
}
