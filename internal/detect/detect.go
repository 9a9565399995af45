// Package detect classifies pasted plain text as Markdown-like or not.
//
// This is a paste-time heuristic, not a parser: it runs an ordered list of
// independent pattern predicates and reports Markdown on the first match.
// False positives and negatives are accepted; the only consequence of the
// verdict is whether the editor offers to format the paste.
package detect

import "regexp"

type pattern struct {
	name string
	re   *regexp.Regexp
}

// Evaluation order only decides which pattern "wins" for diagnostics; the
// boolean verdict is the same for any order.
var patterns = []pattern{
	{"heading", regexp.MustCompile(`(?m)^#+ .*$`)},
	{"bold", regexp.MustCompile(`\*\*.*?\*\*`)},
	{"italic", regexp.MustCompile(`\*.*?\*`)},
	{"underscore-emphasis", regexp.MustCompile(`__.*?__`)},
	{"strikethrough", regexp.MustCompile(`~~.*?~~`)},
	{"bullet-list", regexp.MustCompile(`(?m)^\s*[-*+] `)},
	{"numbered-list", regexp.MustCompile(`(?m)^\s*\d+\. `)},
	{"fenced-code", regexp.MustCompile("(?s)```.*?```")},
	{"inline-code", regexp.MustCompile("`.*?`")},
	{"link", regexp.MustCompile(`\[.*?\]\(.*?\)`)},
	{"image", regexp.MustCompile(`!\[.*?\]\(.*?\)`)},
	{"blockquote", regexp.MustCompile(`(?m)^\s*>`)},
	{"table-row", regexp.MustCompile(`\|.*\|.*\|`)},
	{"horizontal-rule", regexp.MustCompile(`(?m)^-{3,}$`)},
	{"task-list", regexp.MustCompile(`(?m)^\s*- \[ \]`)},
	{"block-math", regexp.MustCompile(`(?s)\$\$.*?\$\$`)},
	{"inline-math", regexp.MustCompile(`\$.*?\$`)},
	{"highlight", regexp.MustCompile(`==.*?==`)},
	{"superscript", regexp.MustCompile(`\^.*?\^`)},
	{"subscript", regexp.MustCompile(`~.*?~`)},
	{"brace-template", regexp.MustCompile(`\{.*?\}`)},
	{"html-comment", regexp.MustCompile(`(?s)<!--.*?-->`)},
	{"directive", regexp.MustCompile(`(?m)^\s*:\w+:`)},
}

// LooksLikeMarkdown reports whether text contains any Markdown marker.
func LooksLikeMarkdown(text string) bool {
	ok, _ := Classify(text)
	return ok
}

// Classify additionally names the first matching pattern, for diagnostics
// ("" when no pattern matches).
func Classify(text string) (bool, string) {
	for _, p := range patterns {
		if p.re.MatchString(text) {
			return true, p.name
		}
	}
	return false, ""
}
