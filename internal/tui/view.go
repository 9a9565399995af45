package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"inkwell/internal/convert"
	"inkwell/internal/publish"
)

func (m appModel) View() string {
	if m.published {
		return "Published.\n"
	}
	if m.width == 0 {
		return "Loading…"
	}

	var body string
	switch m.view {
	case viewPreview:
		body = m.previewView()
	default:
		body = m.editorView()
	}

	if m.modal != modalNone {
		return m.placeCentered(m.modalView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
}

func (m appModel) contentWidth() int {
	w := m.width - 4
	if w > 96 {
		w = 96
	}
	if w < 20 {
		w = 20
	}
	return w
}

func (m appModel) editorView() string {
	w := m.contentWidth()

	title := m.titleInput.View()
	if !m.titleFocused {
		t := m.ed.Title()
		if t == "" {
			t = styleMuted().Render("Untitled (tab to edit the title)")
		} else {
			t = lipgloss.NewStyle().Bold(true).Render(t)
		}
		title = t
	}

	md := convert.DocToMarkdown(m.ed.Doc())
	rendered := renderMarkdown(md, w)
	if rendered == "" {
		rendered = styleMuted().Render("Type / to open the command menu…")
	}

	parts := []string{title, "", rendered}
	if m.ed.Palette().IsOpen() {
		parts = append(parts, "", m.paletteView())
	}

	content := strings.Join(parts, "\n")
	// avail can reach 0 on a tiny terminal; never slice negatively.
	avail := maxInt(m.height-2, 0)
	if lipgloss.Height(content) > avail && avail > 0 {
		lines := strings.Split(content, "\n")
		lines = lines[len(lines)-avail:]
		content = strings.Join(lines, "\n")
	}
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(content)
}

func (m appModel) paletteView() string {
	pal := m.ed.Palette()
	var sb strings.Builder
	sb.WriteString(styleMuted().Render("/" + pal.Query()))
	sb.WriteString("\n")

	items := pal.Items()
	if len(items) == 0 {
		sb.WriteString(styleMuted().Render("no matching commands"))
	}
	sel := lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
	icon := styleMuted().Width(4)
	for i, c := range items {
		line := fmt.Sprintf("%s %s — %s", icon.Render(c.Icon), c.Title, c.Description)
		if i == pal.Selected() {
			line = sel.Render(line)
		}
		sb.WriteString(line)
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)
	return box.Render(sb.String())
}

func (m appModel) previewView() string {
	draft := m.wf.Draft()
	if draft == nil {
		return ""
	}
	w := m.contentWidth()

	title := lipgloss.NewStyle().Bold(true).Width(w).Align(lipgloss.Center).Render(draft.Title)
	parts := []string{title}
	if draft.CoverURL != "" {
		parts = append(parts, styleMuted().Width(w).Align(lipgloss.Center).Render("[cover: "+draft.CoverURL+"]"))
	}
	parts = append(parts, "", renderMarkdown(convert.DocToMarkdown(draft.Doc), w), "",
		styleMuted().Render("esc/b: back to editing   ctrl+d: publish"))
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(strings.Join(parts, "\n"))
}

func (m appModel) modalView() string {
	switch m.modal {
	case modalPasteConfirm:
		return renderConfirmModal(m.width,
			"Markdown detected",
			"The pasted text looks like Markdown. Format it as rich content?",
			"Format", "Keep plain text", m.confirmFocus, false)
	case modalPublishConfirm:
		body := "Published stories are visible to everyone. Publish now?"
		confirm := "Publish"
		if m.wf.State() == publish.StateSubmitting {
			confirm = "Publishing…"
			body = m.spin.View() + " " + body
		}
		return renderConfirmModal(m.width, "Confirm publish", body,
			confirm, "Cancel", m.confirmFocus, m.wf.State() == publish.StateSubmitting)
	case modalPrompt:
		content := m.promptInput.Placeholder + "\n\n" + m.promptInput.View() + "\n\n" +
			styleMuted().Render("enter: confirm   esc: cancel")
		return renderModalBox(m.width, "Input", content)
	}
	return ""
}

func (m appModel) placeCentered(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

func (m appModel) statusBar() string {
	sess := m.ed.Session()
	left := fmt.Sprintf(" %d chars · %s · %s", sess.WordCount(), m.elapsed, m.wf.State())
	right := "tab: title  ctrl+p: preview  ctrl+d: publish  ctrl+o: cover  ctrl+c: quit "
	if m.statusErr != "" {
		right = styleError().Render(m.statusErr) + " "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = xansi.Truncate(right, maxInt(m.width-lipgloss.Width(left)-1, 0), "…")
		gap = maxInt(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	bar := left + strings.Repeat(" ", gap) + right
	return styleMuted().Width(m.width).Render(bar)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
