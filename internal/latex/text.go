// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"strings"
)

// textLine handles a line between blocks. The checks run in a fixed order
// and the first match wins; unmatched lines are prose.
func (c *Converter) textLine(line string) (Mode, string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return TextMode(), "\n", nil
	}

	// There is at most one top-level heading and it is the document title,
	// which the preamble owns.
	if strings.HasPrefix(trimmed, "# ") {
		return TextMode(), "", nil
	}

	if caps, ok := capture(c.pats.linkToLocal, trimmed); ok {
		return TextMode(), `\input{` + caps["path"] + "}\n", nil
	}

	for _, h := range c.pats.headings {
		caps, ok := capture(h.re, trimmed)
		if !ok {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, `\%s{%s}`, h.command, caps["head"])
		if label, ok := caps["label"]; ok {
			fmt.Fprintf(&b, `\label{%s}`, label)
		}
		b.WriteByte('\n')
		return TextMode(), b.String(), nil
	}

	switch trimmed {
	case "|figure":
		return blockMode(ModeFigure), "\\begin{figure}\n", nil
	case "|literal":
		return blockMode(ModeLiteral), "", nil
	}

	// Figures and literals also start with a pipe, so tables come after them.
	if strings.HasPrefix(trimmed, "|") {
		return c.openTable(line, trimmed)
	}

	if caps, ok := capture(c.pats.codeFloat, trimmed); ok {
		lang := strings.TrimSpace(caps["lang"])
		frag := fmt.Sprintf("\\begin{lstlisting}[\n\tstyle=%s,\n\tlanguage=%s,\n\tlabel=%s,\n\tcaption={%s},\n\tfloat]\n",
			lang, lang, strings.TrimSpace(caps["label"]), strings.TrimSpace(caps["caption"]))
		return blockMode(ModeCode), frag, nil
	}

	if caps, ok := capture(c.pats.codeFence, trimmed); ok {
		frag := `\begin{lstlisting}`
		if lang := strings.TrimSpace(caps["lang"]); lang != "" {
			frag += fmt.Sprintf("[style=%s,language=%s]", lang, lang)
		}
		return blockMode(ModeCode), frag + "\n", nil
	}

	if strings.HasPrefix(trimmed, "> ") {
		return blockMode(ModeQuote), "\\begin{displayquote}\n" + c.Inline(trimmed[2:]) + "\n", nil
	}

	if caps, ok := capture(c.pats.startItemize, trimmed); ok {
		return c.openList(&c.unordered, line, caps["item"])
	}
	if caps, ok := capture(c.pats.startEnumerate, trimmed); ok {
		return c.openList(&c.ordered, line, caps["item"])
	}

	if caps, ok := capture(c.pats.footnoteBody, trimmed); ok {
		frag := `\footnotetext[` + caps["mark"] + "]{\n" + c.Inline(caps["body"]) + "\n"
		return blockMode(ModeFootnoteBody), frag, nil
	}

	if trimmed == "$$" {
		return blockMode(ModeUnnumberedEquation), "\\begin{equation*}\n", nil
	}
	if caps, ok := capture(c.pats.numEquation, trimmed); ok {
		return blockMode(ModeNumberedEquation), `\begin{equation}\label{` + caps["label"] + "}\n", nil
	}

	// An empty fragment leaves a blank line behind, which LaTeX reads as a
	// paragraph break.
	if c.pats.lineComment.MatchString(trimmed) {
		return TextMode(), "", nil
	}

	return TextMode(), c.Inline(line) + "\n", nil
}
