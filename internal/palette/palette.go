// Package palette implements the slash-triggered command palette: a fixed
// ordered command table, substring filtering, wrap-around selection, and
// execution against an editing target.
package palette

import "strings"

// Target is the editing surface commands run against. The editor
// implements it; commands never hold document state of their own.
type Target interface {
	// DeleteTriggerRange removes the trigger character and the typed
	// query from the live block. Every command runs it first.
	DeleteTriggerRange()
	SetParagraph()
	ToggleHeading(level int)
	ToggleBulletList()
	ToggleOrderedList()
	ToggleBlockquote()
	ToggleCodeBlock()
	InsertTable(rows, cols int)
	InsertImage(src string)
}

// Command is one entry of the fixed command table. Commands with a
// non-empty Prompt request a line of user input before applying; the
// others apply immediately.
type Command struct {
	Title       string
	Description string
	Icon        string
	Prompt      string
	Apply       func(Target)
	ApplyInput  func(Target, string)
}

type Direction int

const (
	Up Direction = iota
	Down
)

// PendingInput is the explicit suspension point for commands that need a
// line of user input (image URL entry). The trigger range is already
// deleted when a PendingInput is handed out; declining it simply means
// never calling Apply, which leaves the document without an insertion and
// is a normal outcome, not an error.
type PendingInput struct {
	Label string
	apply func(string)
}

func (p *PendingInput) Apply(value string) {
	if p == nil || p.apply == nil {
		return
	}
	p.apply(value)
}

// Palette holds the live palette state between Open and Close.
type Palette struct {
	table    []Command
	query    string
	items    []Command
	selected int
	open     bool
}

func New(table []Command) *Palette {
	return &Palette{table: table}
}

// Open activates the palette with an empty query: all commands in
// registration order, first one selected.
func (p *Palette) Open() {
	p.open = true
	p.query = ""
	p.items = Filter(p.table, "")
	p.selected = 0
}

func (p *Palette) IsOpen() bool    { return p.open }
func (p *Palette) Query() string   { return p.query }
func (p *Palette) Items() []Command { return p.items }
func (p *Palette) Selected() int   { return p.selected }

// SetQuery refilters the table. Selection resets to the top; with no
// matches the palette stays open showing an empty list, and Confirm
// guards against executing into it.
func (p *Palette) SetQuery(q string) {
	if !p.open {
		return
	}
	p.query = q
	p.items = Filter(p.table, q)
	p.selected = 0
}

// Move advances the selection with wrap-around in both directions.
func (p *Palette) Move(dir Direction) {
	n := len(p.items)
	if !p.open || n == 0 {
		return
	}
	switch dir {
	case Up:
		p.selected = (p.selected + n - 1) % n
	case Down:
		p.selected = (p.selected + 1) % n
	}
}

// Confirm executes the selected command against t and closes the palette.
// The command first deletes the trigger range, then applies its transform.
// Commands that prompt return a PendingInput instead of applying; the
// caller resolves it (or declines by dropping it). With an empty result
// set Confirm is a no-op and only closes the palette.
func (p *Palette) Confirm(t Target) *PendingInput {
	if !p.open {
		return nil
	}
	defer p.Close()
	if len(p.items) == 0 || p.selected < 0 || p.selected >= len(p.items) {
		return nil
	}
	cmd := p.items[p.selected]
	t.DeleteTriggerRange()
	if cmd.Prompt != "" {
		apply := cmd.ApplyInput
		return &PendingInput{Label: cmd.Prompt, apply: func(v string) {
			if apply != nil {
				apply(t, v)
			}
		}}
	}
	if cmd.Apply != nil {
		cmd.Apply(t)
	}
	return nil
}

// Close discards the palette state without touching the document.
func (p *Palette) Close() {
	p.open = false
	p.query = ""
	p.items = nil
	p.selected = 0
}

// Filter keeps the commands whose title contains q case-insensitively,
// preserving table order. An empty query keeps everything. No fuzzy
// matching or ranking.
func Filter(table []Command, q string) []Command {
	if q == "" {
		return append([]Command(nil), table...)
	}
	q = strings.ToLower(q)
	var out []Command
	for _, c := range table {
		if strings.Contains(strings.ToLower(c.Title), q) {
			out = append(out, c)
		}
	}
	return out
}
