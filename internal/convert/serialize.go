package convert

import (
	"bytes"
	"fmt"
	"strings"

	"inkwell/internal/doc"
)

// DocToMarkdown serializes a document tree into the Markdown text
// representation used for storage and the Publish API payload.
func DocToMarkdown(d *doc.Document) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}
	first := true
	sep := func() {
		if !first {
			writeLn("")
		}
		first = false
	}
	for _, b := range d.Blocks() {
		switch b.Kind {
		case doc.KindParagraph:
			if t := spansMarkdown(b.Spans); t != "" {
				sep()
				writeLn(t)
			}
		case doc.KindHeading:
			sep()
			writeLn(strings.Repeat("#", b.Level) + " " + spansMarkdown(b.Spans))
		case doc.KindBulletList:
			sep()
			for _, it := range b.Items {
				writeLn("- " + spansMarkdown(it))
			}
		case doc.KindOrderedList:
			sep()
			for i, it := range b.Items {
				writeLn(fmt.Sprintf("%d. %s", i+1, spansMarkdown(it)))
			}
		case doc.KindBlockquote:
			sep()
			writeLn("> " + spansMarkdown(b.Spans))
		case doc.KindCodeBlock:
			sep()
			writeLn("```" + b.Lang)
			code := strings.TrimRight(b.Code, "\n")
			if code != "" {
				writeLn(code)
			}
			writeLn("```")
		case doc.KindTable:
			sep()
			for r, row := range b.Rows {
				writeLn("| " + strings.Join(escapeCells(row), " | ") + " |")
				if b.HeaderRow && r == 0 {
					var dashes []string
					for range row {
						dashes = append(dashes, "---")
					}
					writeLn("| " + strings.Join(dashes, " | ") + " |")
				}
			}
		case doc.KindImage:
			sep()
			writeLn("![" + b.Alt + "](" + b.Src + ")")
		}
	}
	return buf.String()
}

func spansMarkdown(spans []doc.Inline) string {
	var sb strings.Builder
	for _, s := range spans {
		t := s.Text
		if s.Marks.Has(doc.MarkCode) {
			t = "`" + t + "`"
		}
		if s.Marks.Has(doc.MarkBold) {
			t = "**" + t + "**"
		}
		if s.Marks.Has(doc.MarkItalic) {
			t = "*" + t + "*"
		}
		if s.Marks.Has(doc.MarkStrike) {
			t = "~~" + t + "~~"
		}
		if s.Href != "" {
			t = "[" + t + "](" + s.Href + ")"
		}
		sb.WriteString(t)
	}
	return sb.String()
}

func escapeCells(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

// MarkdownToMarkup converts Markdown straight to the rich markup string,
// for hosts that only hold strings.
func MarkdownToMarkup(md string) (string, error) {
	d, err := MarkdownToDoc(md)
	if err != nil {
		return "", err
	}
	return d.Markup(), nil
}
