// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "strings"

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// caption renders a caption line. A line that is already a \label{...} is
// kept as written.
func (c *Converter) caption(line string) string {
	if strings.HasPrefix(strings.TrimSpace(line), `\label{`) {
		return line + "\n"
	}
	return c.Inline(line) + "\n"
}

func (c *Converter) quoteLine(line string) (Mode, string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return TextMode(), "\\end{displayquote}\n\n", nil
	}
	body := strings.TrimPrefix(strings.TrimPrefix(trimmed, ">"), " ")
	return blockMode(ModeQuote), c.Inline(body) + "\n", nil
}

// codeLine copies listing lines verbatim until the closing fence.
func (c *Converter) codeLine(line string) (Mode, string, error) {
	if strings.TrimRight(line, " \t") == "```" {
		return TextMode(), "\\end{lstlisting}\n", nil
	}
	return blockMode(ModeCode), line + "\n", nil
}

// figureLine copies the figure body verbatim; it is expected to be LaTeX
// already. A blank line starts the caption.
func (c *Converter) figureLine(line string) (Mode, string, error) {
	if isBlank(line) {
		return blockMode(ModeFigureCaption), "\n\\caption{", nil
	}
	return blockMode(ModeFigure), line + "\n", nil
}

func (c *Converter) figureCaptionLine(line string) (Mode, string, error) {
	if isBlank(line) {
		return TextMode(), "}\n\\end{figure}\n\n", nil
	}
	return blockMode(ModeFigureCaption), c.caption(line), nil
}

func (c *Converter) literalLine(line string) (Mode, string, error) {
	if isBlank(line) {
		return TextMode(), "", nil
	}
	return blockMode(ModeLiteral), line + "\n", nil
}

func (c *Converter) footnoteBodyLine(line string) (Mode, string, error) {
	if isBlank(line) {
		return TextMode(), "}\n\n", nil
	}
	return blockMode(ModeFootnoteBody), c.Inline(line) + "\n", nil
}

// equationLine copies math verbatim until a line holding only "$$".
func (c *Converter) equationLine(line string, kind ModeKind, env string) (Mode, string, error) {
	if strings.TrimSpace(line) == "$$" {
		return TextMode(), `\end{` + env + "}\n", nil
	}
	return blockMode(kind), line + "\n", nil
}
