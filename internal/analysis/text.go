// Package analysis derives summaries, comparisons, citation sets and impact
// figures from opinion text using fixed extraction templates.
package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

const truncationMarker = "\n\n[TEXT TRUNCATED FOR ANALYSIS]"

var (
	blockTags = map[string]bool{
		"p": true, "br": true, "div": true, "li": true, "tr": true, "pre": true, "blockquote": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	}
	skipTags = map[string]bool{"script": true, "style": true, "head": true}

	spaceRun   = regexp.MustCompile(`[ \t\f\v\x{00a0}]+`)
	blankLines = regexp.MustCompile(`\n\s*\n\s*`)
	markOpen   = regexp.MustCompile(`(?i)<mark>`)
	markClose  = regexp.MustCompile(`(?i)</mark>`)
)

// HTMLToText flattens opinion HTML into paragraphs of plain text.
func HTMLToText(doc string) string {
	z := html.NewTokenizer(strings.NewReader(doc))
	var b strings.Builder
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read.
			return NormalizeSpace(b.String())
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipTags[tag] {
				skipDepth++
			}
			if blockTags[tag] {
				b.WriteString("\n")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipTags[tag] && skipDepth > 0 {
				skipDepth--
			}
			if blockTags[tag] {
				b.WriteString("\n")
			}
		}
	}
}

// NormalizeSpace collapses runs of spaces and keeps at most one blank line between paragraphs.
func NormalizeSpace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = spaceRun.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Truncate cuts s to at most max characters (runes), appending a marker when it cuts.
func Truncate(s string, max int) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s, false
	}
	runes := []rune(s)
	return string(runes[:max]) + truncationMarker, true
}

// Preview returns the first max characters of s followed by "..." when cut.
func Preview(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:max])) + "..."
}

// HighlightsToMarkdown turns search highlighting into markdown bold.
func HighlightsToMarkdown(snippet string) string {
	snippet = markOpen.ReplaceAllString(snippet, "**")
	snippet = markClose.ReplaceAllString(snippet, "**")
	return strings.TrimSpace(snippet)
}
