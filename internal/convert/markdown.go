// Package convert translates between the Markdown text representation
// persisted by the story store and the in-memory document tree.
//
// The two directions are semantically idempotent on block structure and
// inline marks; exact whitespace is not preserved. Callers treat a
// conversion error as a signal to fall back to the raw text, never as a
// fatal condition.
package convert

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"inkwell/internal/doc"
)

var parser = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// MarkdownToDoc parses Markdown into a document tree. Coverage matches
// what the editor can author: headings 1-3 (deeper levels clamp to 3),
// paragraphs, bold/italic/strikethrough, bullet and ordered lists,
// blockquotes, fenced code blocks, inline code, links, images.
func MarkdownToDoc(md string) (d *doc.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse markdown: %v", r)
		}
	}()
	source := []byte(md)
	root := parser.Parser().Parse(text.NewReader(source))
	var blocks []doc.Block
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, convertBlock(n, source)...)
	}
	return doc.FromBlocks(blocks), nil
}

func convertBlock(n ast.Node, source []byte) []doc.Block {
	switch b := n.(type) {
	case *ast.Heading:
		level := b.Level
		if level > 3 {
			level = 3
		}
		return []doc.Block{{Kind: doc.KindHeading, Level: level, Spans: convertSpans(b, source)}}
	case *ast.Paragraph:
		// A paragraph holding a single image becomes an image block
		// (Markdown has no block-level image of its own).
		if img, ok := soleImage(b); ok {
			return []doc.Block{{
				Kind: doc.KindImage,
				Src:  string(img.Destination),
				Alt:  altText(img, source),
			}}
		}
		return []doc.Block{{Kind: doc.KindParagraph, Spans: convertSpans(b, source)}}
	case *ast.List:
		kind := doc.KindBulletList
		if b.IsOrdered() {
			kind = doc.KindOrderedList
		}
		var items [][]doc.Inline
		for li := b.FirstChild(); li != nil; li = li.NextSibling() {
			var spans []doc.Inline
			for c := li.FirstChild(); c != nil; c = c.NextSibling() {
				spans = append(spans, convertSpans(c, source)...)
			}
			items = append(items, spans)
		}
		return []doc.Block{{Kind: kind, Items: items}}
	case *ast.Blockquote:
		var spans []doc.Inline
		for c := b.FirstChild(); c != nil; c = c.NextSibling() {
			spans = append(spans, convertSpans(c, source)...)
		}
		return []doc.Block{{Kind: doc.KindBlockquote, Spans: spans}}
	case *ast.FencedCodeBlock:
		return []doc.Block{{
			Kind: doc.KindCodeBlock,
			Lang: string(b.Language(source)),
			Code: linesText(b, source),
		}}
	case *ast.CodeBlock:
		return []doc.Block{{Kind: doc.KindCodeBlock, Code: linesText(b, source)}}
	default:
		// Unhandled block kinds degrade to a paragraph of their text so
		// pasted content is never silently dropped.
		if spans := convertSpans(n, source); len(spans) > 0 {
			return []doc.Block{{Kind: doc.KindParagraph, Spans: spans}}
		}
		return nil
	}
}

func convertSpans(n ast.Node, source []byte) []doc.Inline {
	var out []doc.Inline
	walkSpans(n, source, 0, "", &out)
	return out
}

func walkSpans(n ast.Node, source []byte, marks doc.Mark, href string, out *[]doc.Inline) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch s := c.(type) {
		case *ast.Text:
			t := string(s.Segment.Value(source))
			if t != "" {
				*out = append(*out, doc.Inline{Text: t, Marks: marks, Href: href})
			}
			if s.SoftLineBreak() || s.HardLineBreak() {
				*out = append(*out, doc.Inline{Text: " ", Marks: marks, Href: href})
			}
		case *ast.Emphasis:
			m := marks | doc.MarkItalic
			if s.Level >= 2 {
				m = marks | doc.MarkBold
			}
			walkSpans(s, source, m, href, out)
		case *east.Strikethrough:
			walkSpans(s, source, marks|doc.MarkStrike, href, out)
		case *ast.CodeSpan:
			t := segmentsText(s, source)
			if t != "" {
				*out = append(*out, doc.Inline{Text: t, Marks: marks | doc.MarkCode, Href: href})
			}
		case *ast.Link:
			walkSpans(s, source, marks, string(s.Destination), out)
		case *ast.Image:
			// Inline image inside mixed content: keep the alt text as a
			// link to the source, so nothing is lost.
			*out = append(*out, doc.Inline{Text: altText(s, source), Marks: marks, Href: string(s.Destination)})
		default:
			walkSpans(c, source, marks, href, out)
		}
	}
}

func soleImage(p *ast.Paragraph) (*ast.Image, bool) {
	c := p.FirstChild()
	if c == nil || c.NextSibling() != nil {
		return nil, false
	}
	img, ok := c.(*ast.Image)
	return img, ok
}

func altText(img *ast.Image, source []byte) string {
	return segmentsText(img, source)
}

func segmentsText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
	}
	return sb.String()
}

func linesText(n interface {
	Lines() *text.Segments
}, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}
