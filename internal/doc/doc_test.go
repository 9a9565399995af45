package doc

import (
	"strings"
	"testing"
)

func TestNew_StartsWithEmptyParagraph(t *testing.T) {
	t.Parallel()

	d := New()
	if d.Len() != 1 || d.Block(0).Kind != KindParagraph {
		t.Fatalf("new document = %v", d.Kinds())
	}
	if d.PlainText() != "" || d.RuneCount() != 0 {
		t.Fatalf("empty document projection: %q (%d)", d.PlainText(), d.RuneCount())
	}
}

func TestPlainText_FlattensAllBlockKinds(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{
		{Kind: KindHeading, Level: 1, Spans: Text("Title")},
		{Kind: KindParagraph, Spans: []Inline{{Text: "bold", Marks: MarkBold}, {Text: " tail"}}},
		{Kind: KindBulletList, Items: [][]Inline{Text("one"), Text("two")}},
		{Kind: KindCodeBlock, Code: "code()\n"},
		{Kind: KindTable, Rows: [][]string{{"a", "b"}}},
		{Kind: KindImage, Src: "u", Alt: "alt"},
	})
	got := d.PlainText()
	for _, want := range []string{"Title", "bold tail", "one\ntwo", "code()", "a b", "alt"} {
		if !strings.Contains(got, want) {
			t.Fatalf("projection missing %q:\n%q", want, got)
		}
	}
	// Marks and structure must not leak into the projection.
	for _, bad := range []string{"*", "#", "|", "<"} {
		if strings.Contains(got, bad) {
			t.Fatalf("projection contains markup %q: %q", bad, got)
		}
	}
}

func TestToggleHeading(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{{Kind: KindParagraph, Spans: Text("hi")}})
	d.ToggleHeading(0, 2)
	if b := d.Block(0); b.Kind != KindHeading || b.Level != 2 || SpanText(b.Spans) != "hi" {
		t.Fatalf("toggle on: %+v", d.Block(0))
	}
	// Same level toggles back to a paragraph.
	d.ToggleHeading(0, 2)
	if b := d.Block(0); b.Kind != KindParagraph || SpanText(b.Spans) != "hi" {
		t.Fatalf("toggle off: %+v", d.Block(0))
	}
	// Out-of-range level clamps.
	d.ToggleHeading(0, 9)
	if b := d.Block(0); b.Kind != KindHeading || b.Level != 3 {
		t.Fatalf("clamp: %+v", d.Block(0))
	}
}

func TestToggleList_SwitchesKindAndCollapses(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{{Kind: KindParagraph, Spans: Text("item")}})
	d.ToggleBulletList(0)
	if b := d.Block(0); b.Kind != KindBulletList || len(b.Items) != 1 {
		t.Fatalf("to bullet: %+v", d.Block(0))
	}
	d.ToggleOrderedList(0)
	if b := d.Block(0); b.Kind != KindOrderedList || len(b.Items) != 1 {
		t.Fatalf("to ordered keeps items: %+v", d.Block(0))
	}
	d.ToggleOrderedList(0)
	if b := d.Block(0); b.Kind != KindParagraph || SpanText(b.Spans) != "item" {
		t.Fatalf("collapse: %+v", d.Block(0))
	}
}

func TestToggleCodeBlock_KeepsText(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{{Kind: KindParagraph, Spans: Text("x := 1")}})
	d.ToggleCodeBlock(0)
	if b := d.Block(0); b.Kind != KindCodeBlock || b.Code != "x := 1" {
		t.Fatalf("to code: %+v", d.Block(0))
	}
	d.ToggleCodeBlock(0)
	if b := d.Block(0); b.Kind != KindParagraph || SpanText(b.Spans) != "x := 1" {
		t.Fatalf("back: %+v", d.Block(0))
	}
}

func TestInsertTable_ShapeAndPosition(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{{Kind: KindParagraph, Spans: Text("before")}})
	at := d.InsertTable(0, 3, 3)
	if at != 1 {
		t.Fatalf("insert index = %d", at)
	}
	b := d.Block(1)
	if b.Kind != KindTable || len(b.Rows) != 3 || len(b.Rows[0]) != 3 || !b.HeaderRow {
		t.Fatalf("table shape: %+v", b)
	}
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{
		{Kind: KindParagraph, Spans: Text("original")},
		{Kind: KindBulletList, Items: [][]Inline{Text("a")}},
	})
	c := d.Clone()
	d.Block(0).Spans[0].Text = "mutated"
	d.Block(1).Items[0][0].Text = "mutated"
	if got := SpanText(c.Block(0).Spans); got != "original" {
		t.Fatalf("clone spans shared: %q", got)
	}
	if got := SpanText(c.Block(1).Items[0]); got != "a" {
		t.Fatalf("clone items shared: %q", got)
	}
}

func TestMarkup_RendersRichMarkup(t *testing.T) {
	t.Parallel()

	d := FromBlocks([]Block{
		{Kind: KindHeading, Level: 1, Spans: Text("T")},
		{Kind: KindParagraph, Spans: []Inline{{Text: "b", Marks: MarkBold}, {Text: "<raw>"}}},
		{Kind: KindBulletList, Items: [][]Inline{Text("i")}},
	})
	got := d.Markup()
	for _, want := range []string{"<h1>T</h1>", "<strong>b</strong>", "&lt;raw&gt;", "<ul>", "<li>i</li>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("markup missing %q:\n%s", want, got)
		}
	}
}

func TestRemoveAt_NeverLeavesEmptyDocument(t *testing.T) {
	t.Parallel()

	d := New()
	d.RemoveAt(0)
	if d.Len() != 1 || d.Block(0).Kind != KindParagraph {
		t.Fatalf("document left empty: %v", d.Kinds())
	}
}
