package doc

import (
	"fmt"
	"html"
	"strings"
)

// Markup renders the rich markup string for the document: the HTML-shaped
// representation used for preview snapshots and interchange with the
// hosting page. The Markdown representation used for storage lives in
// internal/convert.
func (d *Document) Markup() string {
	var sb strings.Builder
	writeLn := func(s string) {
		sb.WriteString(s)
		sb.WriteString("\n")
	}
	for _, b := range d.blocks {
		switch b.Kind {
		case KindParagraph:
			writeLn("<p>" + spansMarkup(b.Spans) + "</p>")
		case KindHeading:
			writeLn(fmt.Sprintf("<h%d>%s</h%d>", b.Level, spansMarkup(b.Spans), b.Level))
		case KindBulletList:
			writeLn("<ul>")
			for _, it := range b.Items {
				writeLn("<li>" + spansMarkup(it) + "</li>")
			}
			writeLn("</ul>")
		case KindOrderedList:
			writeLn("<ol>")
			for _, it := range b.Items {
				writeLn("<li>" + spansMarkup(it) + "</li>")
			}
			writeLn("</ol>")
		case KindBlockquote:
			writeLn("<blockquote><p>" + spansMarkup(b.Spans) + "</p></blockquote>")
		case KindCodeBlock:
			lang := ""
			if b.Lang != "" {
				lang = ` class="language-` + html.EscapeString(b.Lang) + `"`
			}
			writeLn("<pre><code" + lang + ">" + html.EscapeString(b.Code) + "</code></pre>")
		case KindTable:
			writeLn("<table>")
			for r, row := range b.Rows {
				cell := "td"
				if b.HeaderRow && r == 0 {
					cell = "th"
				}
				var cells []string
				for _, c := range row {
					cells = append(cells, "<"+cell+">"+html.EscapeString(c)+"</"+cell+">")
				}
				writeLn("<tr>" + strings.Join(cells, "") + "</tr>")
			}
			writeLn("</table>")
		case KindImage:
			writeLn(`<img src="` + html.EscapeString(b.Src) + `" alt="` + html.EscapeString(b.Alt) + `">`)
		}
	}
	return sb.String()
}

func spansMarkup(spans []Inline) string {
	var sb strings.Builder
	for _, s := range spans {
		t := html.EscapeString(s.Text)
		if s.Marks.Has(MarkCode) {
			t = "<code>" + t + "</code>"
		}
		if s.Marks.Has(MarkBold) {
			t = "<strong>" + t + "</strong>"
		}
		if s.Marks.Has(MarkItalic) {
			t = "<em>" + t + "</em>"
		}
		if s.Marks.Has(MarkStrike) {
			t = "<s>" + t + "</s>"
		}
		if s.Href != "" {
			t = `<a href="` + html.EscapeString(s.Href) + `">` + t + "</a>"
		}
		sb.WriteString(t)
	}
	return sb.String()
}
