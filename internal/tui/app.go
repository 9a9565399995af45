// Package tui hosts the document editor in a terminal: editing surface,
// slash-command palette overlay, paste-format dialog, preview, and the
// confirm-gated publish flow.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/autosave"
	"inkwell/internal/convert"
	"inkwell/internal/editor"
	"inkwell/internal/palette"
	"inkwell/internal/publish"
)

type view int

const (
	viewEditor view = iota
	viewPreview
)

type modalKind int

const (
	modalNone modalKind = iota
	modalPasteConfirm
	modalPublishConfirm
	modalPrompt
)

type promptPurpose int

const (
	promptPaletteInput promptPurpose = iota
	promptCoverURL
)

type elapsedTickMsg time.Time

type publishResultMsg struct {
	err error
}

type Options struct {
	Title     string
	CoverURL  string
	Publisher publish.Publisher

	// AutosavePath, when set, receives the draft Markdown on a debounce
	// while editing.
	AutosavePath string
}

type appModel struct {
	ed        *editor.Editor
	wf        *publish.Workflow
	publisher publish.Publisher
	saver     *autosave.Saver

	width  int
	height int

	view  view
	modal modalKind

	confirmFocus confirmModalFocus
	promptInput  textinput.Model
	promptFor    promptPurpose
	pendingInput *palette.PendingInput
	pastePrompt  *editor.PastePrompt

	titleInput   textinput.Model
	titleFocused bool

	spin    spinner.Model
	elapsed string

	statusErr string
	published bool
}

func newAppModel(opts Options) appModel {
	ed := editor.New(time.Now())
	ed.SetTitle(opts.Title)
	ed.SetCover(opts.CoverURL)

	m := appModel{
		ed:        ed,
		publisher: opts.Publisher,
		view:      viewEditor,
		elapsed:   "0 min",
	}
	m.wf = publish.NewWorkflow(ed.Snapshot)
	if opts.AutosavePath != "" {
		m.saver = autosave.New(opts.AutosavePath, 0)
	}

	m.titleInput = textinput.New()
	m.titleInput.Placeholder = "Title (up to 100 characters)"
	m.titleInput.CharLimit = 100
	m.titleInput.Width = 60
	m.titleInput.SetValue(opts.Title)

	m.promptInput = textinput.New()
	m.promptInput.CharLimit = 500
	m.promptInput.Width = 50

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	return m
}

func (m appModel) Init() tea.Cmd {
	return tickElapsed()
}

// The elapsed label is recomputed on a fixed tick, not per keystroke.
func tickElapsed() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return elapsedTickMsg(t)
	})
}

// submitCmd performs the one network call for a confirmed submission.
// The publish controls stay disabled while it runs; closing the dialog
// does not cancel it, and the result message still resolves the workflow
// when it lands.
func submitCmd(p publish.Publisher, sub publish.Submission) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		return publishResultMsg{err: p.Publish(ctx, sub)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case elapsedTickMsg:
		m.elapsed = m.ed.Session().ElapsedLabel(time.Time(msg))
		return m, tickElapsed()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case publishResultMsg:
		m.wf.Resolve(msg.err)
		if msg.err != nil {
			m.statusErr = "Publish failed: " + msg.err.Error()
			m.wf.Edit()
			m.view = viewEditor
			m.modal = modalNone
			return m, nil
		}
		// The story is out; quit after a successful publish.
		m.published = true
		m.modal = modalNone
		return m, tea.Quit

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modal != modalNone {
		return m.updateModalKey(msg)
	}

	switch m.view {
	case viewPreview:
		return m.updatePreviewKey(msg)
	default:
		return m.updateEditorKey(msg)
	}
}

func (m appModel) updatePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		_ = m.wf.Back()
		m.view = viewEditor
	case "ctrl+d":
		if err := m.wf.RequestPublish(); err == nil {
			m.confirmFocus = confirmFocusConfirm
			m.modal = modalPublishConfirm
		}
	}
	return m, nil
}

func (m appModel) updateEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Paste arrives as a bracketed-paste key message; it goes through the
	// detector instead of the typing path.
	if msg.Paste {
		if p := m.ed.Paste(string(msg.Runes)); p != nil {
			m.pastePrompt = p
			m.confirmFocus = confirmFocusConfirm
			m.modal = modalPasteConfirm
		}
		return m, nil
	}

	if m.titleFocused {
		switch msg.String() {
		case "enter", "esc", "tab":
			m.titleFocused = false
			m.titleInput.Blur()
			m.ed.SetTitle(m.titleInput.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.ed.SetTitle(m.titleInput.Value())
		return m, cmd
	}

	if m.ed.Palette().IsOpen() {
		switch msg.String() {
		case "up":
			m.ed.PaletteMove(palette.Up)
			return m, nil
		case "down":
			m.ed.PaletteMove(palette.Down)
			return m, nil
		case "enter":
			if pending := m.ed.ConfirmPalette(); pending != nil {
				m.pendingInput = pending
				m.promptFor = promptPaletteInput
				m.openPrompt(pending.Label)
			}
			m.touchDraft()
			return m, nil
		case "esc":
			m.ed.ClosePalette()
			return m, nil
		case "backspace":
			m.ed.Backspace()
			m.touchDraft()
			return m, nil
		}
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.ed.InsertText(keyText(msg))
			m.touchDraft()
		}
		return m, nil
	}

	switch msg.String() {
	case "tab":
		m.titleFocused = true
		m.statusErr = ""
		return m, m.titleInput.Focus()
	case "enter":
		m.statusErr = ""
		m.ed.Newline()
		m.touchDraft()
		return m, nil
	case "backspace":
		m.ed.Backspace()
		m.touchDraft()
		return m, nil
	case "up":
		m.ed.SetCurrent(m.ed.CurrentIndex() - 1)
		return m, nil
	case "down":
		m.ed.SetCurrent(m.ed.CurrentIndex() + 1)
		return m, nil
	case "ctrl+p":
		if err := m.wf.Preview(); err == nil {
			m.view = viewPreview
		}
		return m, nil
	case "ctrl+d":
		m.statusErr = ""
		if err := m.wf.RequestPublish(); err == nil {
			m.confirmFocus = confirmFocusConfirm
			m.modal = modalPublishConfirm
		}
		return m, nil
	case "ctrl+o":
		m.promptFor = promptCoverURL
		m.openPrompt("Cover image URL")
		return m, nil
	}

	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.statusErr = ""
		m.ed.InsertText(keyText(msg))
		m.touchDraft()
	}
	return m, nil
}

// touchDraft hands the current draft to the autosaver. Rendering here,
// on the update loop, keeps the background write off the live document.
func (m appModel) touchDraft() {
	if m.saver == nil {
		return
	}
	m.saver.Notify(convert.DocToMarkdown(m.ed.Doc()))
}

func (m *appModel) openPrompt(label string) {
	m.promptInput.Placeholder = label
	m.promptInput.SetValue("")
	m.promptInput.Focus()
	m.modal = modalPrompt
}

func (m appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalPasteConfirm:
		return m.updatePasteModalKey(msg)
	case modalPublishConfirm:
		return m.updatePublishModalKey(msg)
	case modalPrompt:
		return m.updatePromptModalKey(msg)
	}
	return m, nil
}

func (m appModel) updatePasteModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		m.confirmFocus = 1 - m.confirmFocus
	case "enter":
		if m.pastePrompt != nil {
			if m.confirmFocus == confirmFocusConfirm {
				m.pastePrompt.AcceptFormatted()
			} else {
				m.pastePrompt.KeepPlain()
			}
			m.touchDraft()
		}
		m.pastePrompt = nil
		m.modal = modalNone
	case "esc":
		// Dismissing the dialog drops the paste entirely; a declined
		// prompt never mutates the document.
		m.pastePrompt = nil
		m.modal = modalNone
	}
	return m, nil
}

func (m appModel) updatePublishModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitting := m.wf.State() == publish.StateSubmitting
	switch msg.String() {
	case "tab", "left", "right":
		if !submitting {
			m.confirmFocus = 1 - m.confirmFocus
		}
	case "enter":
		if submitting {
			// Confirm control is disabled for the duration.
			return m, nil
		}
		if m.confirmFocus == confirmFocusCancel {
			_ = m.wf.Cancel()
			m.modal = modalNone
			if m.wf.State() == publish.StatePreviewing {
				m.view = viewPreview
			}
			return m, nil
		}
		sub, err := m.wf.Confirm()
		if err != nil {
			return m, nil
		}
		return m, tea.Batch(m.spin.Tick, submitCmd(m.publisher, sub))
	case "esc":
		if submitting {
			// Closes the dialog only: the in-flight submission is not
			// cancelled and its result still resolves the workflow.
			m.modal = modalNone
			return m, nil
		}
		_ = m.wf.Cancel()
		m.modal = modalNone
		if m.wf.State() == publish.StatePreviewing {
			m.view = viewPreview
		}
	}
	return m, nil
}

func (m appModel) updatePromptModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.promptInput.Value()
		m.promptInput.Blur()
		m.modal = modalNone
		switch m.promptFor {
		case promptCoverURL:
			m.ed.SetCover(value)
		case promptPaletteInput:
			if m.pendingInput != nil && value != "" {
				m.pendingInput.Apply(value)
				m.touchDraft()
			}
			m.pendingInput = nil
		}
		return m, nil
	case "esc":
		// Declined input: for palette commands the trigger range is
		// already deleted and nothing is inserted. Normal outcome.
		m.promptInput.Blur()
		m.pendingInput = nil
		m.modal = modalNone
		return m, nil
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func keyText(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return " "
	}
	return string(msg.Runes)
}

// Run starts the interactive editor and blocks until it exits.
func Run(opts Options) error {
	applyColorProfilePreference()
	m := newAppModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	if m.saver != nil {
		_ = m.saver.Flush()
	}
	return err
}
