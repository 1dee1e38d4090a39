// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"regexp"
)

// Patterns is the compiled pattern table shared by every handler. It is
// never modified after NewPatterns returns, so one table may serve any
// number of converters and goroutines.
type Patterns struct {
	linkToLocal    *regexp.Regexp
	tableColumn    *regexp.Regexp
	startEnumerate *regexp.Regexp
	startItemize   *regexp.Regexp
	footnoteBody   *regexp.Regexp
	comment        *regexp.Regexp
	lineComment    *regexp.Regexp
	numEquation    *regexp.Regexp
	codeFence      *regexp.Regexp
	codeFloat      *regexp.Regexp

	// headings is ordered deepest first.
	headings []headingRule

	// inline is applied in slice order after '&' escaping and comment removal.
	inline []inlineRule
}

type headingRule struct {
	re      *regexp.Regexp
	command string
}

type inlineRule struct {
	name string
	re   *regexp.Regexp
	repl string
}

// headingExpr builds the pattern for a heading marker. The optional
// "[]{#id}" anchor becomes the label capture.
func headingExpr(marker string) string {
	return `^` + marker + ` (?:\[\]\{#(?P<label>[^}]+)\})?(?P<head>.*)$`
}

// NewPatterns compiles the pattern table. An error here is a programming
// error in the expressions themselves and should stop the program.
func NewPatterns() (*Patterns, error) {
	p := &Patterns{}

	single := []struct {
		name string
		dst  **regexp.Regexp
		expr string
	}{
		{"local link", &p.linkToLocal, `^\[(?P<label>.+)\]\(\./(?P<path>.+)\.md\)$`},
		{"table column", &p.tableColumn, `^(?:<!--(?P<desc>.+?)-->)?(?P<label>.*)$`},
		{"enumerate item", &p.startEnumerate, `^[0-9]+\. (?P<item>.+)$`},
		{"itemize item", &p.startItemize, `^[*+-] (?P<item>.+)$`},
		{"footnote body", &p.footnoteBody, `^\[\^(?P<mark>[^\]]+?)\](?P<body>.+)$`},
		{"comment", &p.comment, `<!--.*?-->`},
		{"line comment", &p.lineComment, `^<!--.*-->$`},
		{"numbered equation", &p.numEquation, `^\$\$<!--(?P<label>.+?)-->$`},
		{"code fence", &p.codeFence, "^```(?P<lang>.*)$"},
		{"code float", &p.codeFloat, "^```(?P<lang>[^<]+?)<!--(?P<label>.+?)--><!--(?P<caption>.+)-->$"},
	}
	for _, s := range single {
		re, err := regexp.Compile(s.expr)
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern: %w", s.name, err)
		}
		*s.dst = re
	}

	for _, h := range []struct{ marker, command string }{
		{"#####", "subsubsection"},
		{"####", "subsection"},
		{"###", "section"},
		{"##", "chapter"},
	} {
		re, err := regexp.Compile(headingExpr(h.marker))
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern: %w", h.command, err)
		}
		p.headings = append(p.headings, headingRule{re: re, command: h.command})
	}

	// Order matters: later rules see the output of earlier ones.
	for _, r := range []struct{ name, expr, repl string }{
		{"superscript", `\^(?P<super>.+?)\^`, `\textsuperscript{${super}}`},
		{"bold", `\*(?P<bold>.+?)\*`, `\textbf{${bold}}`},
		{"mono", "`(?P<mono>.+?)`", `\texttt{${mono}}`},
		{"single quote", `'(?P<quote>.+?)'`, "`${quote}'"},
		{"double quote", `"(?P<quote>.+?)"`, "``${quote}''"},
		{"emphasis", `_(?P<emph>.+?)_`, `\emph{${emph}}`},
		{"link", `\[(?P<text>[^\]]+?)\]\((?P<link>[^)]+?)\)`, `${text} \url{${link}}`},
		{"footnote mark", `\[\^(?P<mark>[^\]]+?)\]`, `\footnotemark[${mark}]`},
	} {
		re, err := regexp.Compile(r.expr)
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern: %w", r.name, err)
		}
		p.inline = append(p.inline, inlineRule{name: r.name, re: re, repl: r.repl})
	}

	return p, nil
}

// MustPatterns is like NewPatterns but panics on error.
func MustPatterns() *Patterns {
	p, err := NewPatterns()
	if err != nil {
		panic(err)
	}
	return p
}

// Captures holds the named sub-matches of one pattern match. A group that
// did not participate in the match is absent from the map.
type Captures map[string]string

func capture(re *regexp.Regexp, s string) (Captures, bool) {
	idx := re.FindStringSubmatchIndex(s)
	if idx == nil {
		return nil, false
	}
	caps := make(Captures)
	for i, name := range re.SubexpNames() {
		if name == "" || idx[2*i] < 0 {
			continue
		}
		caps[name] = s[idx[2*i]:idx[2*i+1]]
	}
	return caps, true
}
