package palette

import (
	"strings"
	"testing"
)

// fakeTarget records the calls a command makes, in order.
type fakeTarget struct {
	calls []string
}

func (f *fakeTarget) DeleteTriggerRange()      { f.calls = append(f.calls, "delete-trigger") }
func (f *fakeTarget) SetParagraph()            { f.calls = append(f.calls, "paragraph") }
func (f *fakeTarget) ToggleHeading(level int)  { f.calls = append(f.calls, "heading") }
func (f *fakeTarget) ToggleBulletList()        { f.calls = append(f.calls, "bullet") }
func (f *fakeTarget) ToggleOrderedList()       { f.calls = append(f.calls, "ordered") }
func (f *fakeTarget) ToggleBlockquote()        { f.calls = append(f.calls, "quote") }
func (f *fakeTarget) ToggleCodeBlock()         { f.calls = append(f.calls, "code") }
func (f *fakeTarget) InsertTable(r, c int)     { f.calls = append(f.calls, "table") }
func (f *fakeTarget) InsertImage(src string)   { f.calls = append(f.calls, "image:"+src) }

func TestFilter_EmptyQueryKeepsTableOrder(t *testing.T) {
	t.Parallel()

	table := DefaultCommands()
	got := Filter(table, "")
	if len(got) != len(table) {
		t.Fatalf("Filter(table, \"\") returned %d commands, want %d", len(got), len(table))
	}
	for i := range table {
		if got[i].Title != table[i].Title {
			t.Fatalf("order changed at %d: got %q want %q", i, got[i].Title, table[i].Title)
		}
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	table := DefaultCommands()
	got := Filter(table, "HEAD")
	if len(got) != 3 {
		t.Fatalf("Filter(table, \"HEAD\") returned %d commands, want 3", len(got))
	}
	for _, c := range got {
		if !strings.Contains(strings.ToLower(c.Title), "head") {
			t.Fatalf("unexpected command %q", c.Title)
		}
	}

	if got := Filter(table, "no such command"); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestMove_WrapsBothDirections(t *testing.T) {
	t.Parallel()

	p := New(DefaultCommands())
	p.Open()
	n := len(p.Items())

	p.Move(Up)
	if p.Selected() != n-1 {
		t.Fatalf("up from 0: got %d want %d", p.Selected(), n-1)
	}
	p.Move(Down)
	if p.Selected() != 0 {
		t.Fatalf("down from last: got %d want 0", p.Selected())
	}
	for i := 0; i < n; i++ {
		p.Move(Down)
	}
	if p.Selected() != 0 {
		t.Fatalf("full cycle down: got %d want 0", p.Selected())
	}
}

func TestSetQuery_RefiltersAndResetsSelection(t *testing.T) {
	t.Parallel()

	p := New(DefaultCommands())
	p.Open()
	p.Move(Down)
	p.SetQuery("list")
	if p.Selected() != 0 {
		t.Fatalf("selection not reset: got %d", p.Selected())
	}
	if len(p.Items()) != 2 {
		t.Fatalf("query \"list\": got %d items, want 2", len(p.Items()))
	}
	if p.Items()[0].Title != "Bullet list" || p.Items()[1].Title != "Numbered list" {
		t.Fatalf("unexpected items: %q, %q", p.Items()[0].Title, p.Items()[1].Title)
	}
}

func TestConfirm_DeletesTriggerRangeFirst(t *testing.T) {
	t.Parallel()

	p := New(DefaultCommands())
	p.Open()
	p.SetQuery("heading 2")
	ft := &fakeTarget{}
	if pending := p.Confirm(ft); pending != nil {
		t.Fatalf("unexpected pending input")
	}
	want := []string{"delete-trigger", "heading"}
	if len(ft.calls) != 2 || ft.calls[0] != want[0] || ft.calls[1] != want[1] {
		t.Fatalf("calls = %v, want %v", ft.calls, want)
	}
	if p.IsOpen() {
		t.Fatalf("palette still open after confirm")
	}
}

func TestConfirm_EmptyResultSetIsNoop(t *testing.T) {
	t.Parallel()

	p := New(DefaultCommands())
	p.Open()
	p.SetQuery("zzz")
	ft := &fakeTarget{}
	if pending := p.Confirm(ft); pending != nil {
		t.Fatalf("unexpected pending input")
	}
	if len(ft.calls) != 0 {
		t.Fatalf("no-op confirm made calls: %v", ft.calls)
	}
	if p.IsOpen() {
		t.Fatalf("palette should close")
	}
}

func TestConfirm_ImagePromptsAndDeclineInsertsNothing(t *testing.T) {
	t.Parallel()

	p := New(DefaultCommands())
	p.Open()
	p.SetQuery("image")
	ft := &fakeTarget{}
	pending := p.Confirm(ft)
	if pending == nil {
		t.Fatalf("expected pending input for image command")
	}
	if pending.Label != "Image URL" {
		t.Fatalf("label = %q", pending.Label)
	}
	// The trigger range is already gone; declining (never calling Apply)
	// must leave it at that.
	if len(ft.calls) != 1 || ft.calls[0] != "delete-trigger" {
		t.Fatalf("calls before apply = %v", ft.calls)
	}

	pending.Apply("https://example.com/a.png")
	if ft.calls[len(ft.calls)-1] != "image:https://example.com/a.png" {
		t.Fatalf("apply did not insert image: %v", ft.calls)
	}
}

func TestClose_DiscardsState(t *testing.T) {
	t.Parallel()

	p := New(DefaultCommands())
	p.Open()
	p.SetQuery("head")
	p.Close()
	if p.IsOpen() || p.Query() != "" || len(p.Items()) != 0 {
		t.Fatalf("state not discarded: open=%v query=%q items=%d", p.IsOpen(), p.Query(), len(p.Items()))
	}
	ft := &fakeTarget{}
	if pending := p.Confirm(ft); pending != nil || len(ft.calls) != 0 {
		t.Fatalf("confirm after close must be a no-op")
	}
}
