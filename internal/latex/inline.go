// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Inline converts one span of Markdown-flavored text to LaTeX. The span must
// not carry structural markers (headings, list bullets, table pipes).
//
// The span is normalized to NFC first. Rules then run in a fixed order:
// escape '&', drop <!-- comments -->, then superscript, bold, monospace,
// single quotes, double quotes, emphasis, links and footnote marks. All delimiters match the shortest span, and
// there is no escape for a literal delimiter character.
func (p *Patterns) Inline(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "&", `\&`)
	s = p.comment.ReplaceAllString(s, "")
	for _, r := range p.inline {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
