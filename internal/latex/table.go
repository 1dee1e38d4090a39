// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"strings"
)

// Rule policy phrases looked for on the line after the table header.
var (
	ruleEveryRowPhrases   = []string{"line every row", "rule every row"}
	ruleHeaderOnlyPhrases = []string{"line header only", "rule header only"}
)

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// splitRow splits "| a | b |" into trimmed cells. It reports false unless
// the row both starts and ends with a pipe.
func splitRow(trimmed string) ([]string, bool) {
	if len(trimmed) < 2 || trimmed[0] != '|' || trimmed[len(trimmed)-1] != '|' {
		return nil, false
	}
	cells := strings.Split(trimmed[1:len(trimmed)-1], "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells, true
}

type column struct {
	format string
	label  string
}

// parseColumn reads "<!-- fmt --> Label". The format defaults to "c".
func (c *Converter) parseColumn(cell string) (column, bool) {
	caps, ok := capture(c.pats.tableColumn, cell)
	if !ok {
		return column{}, false
	}
	col := column{format: "c", label: strings.TrimSpace(caps["label"])}
	if strings.Contains(col.label, "<!--") || strings.Contains(col.label, "-->") {
		return column{}, false
	}
	if desc, ok := caps["desc"]; ok {
		col.format = strings.TrimSpace(desc)
		if col.format == "" {
			return column{}, false
		}
	}
	return col, true
}

// openTable renders the header line of a table. Every column must parse.
func (c *Converter) openTable(line, trimmed string) (Mode, string, error) {
	cells, ok := splitRow(trimmed)
	if !ok {
		return Mode{}, "", fmt.Errorf("%w: line starts with '|' but does not end with '|': %q", ErrMalformedTableHeader, line)
	}

	cols := make([]column, 0, len(cells))
	var bad []int
	for i, cell := range cells {
		col, ok := c.parseColumn(cell)
		if !ok {
			bad = append(bad, i+1)
			continue
		}
		cols = append(cols, col)
	}
	if len(bad) > 0 {
		return Mode{}, "", fmt.Errorf("%w: cannot parse column(s) %v in %q", ErrMalformedTableHeader, bad, line)
	}

	formats := make([]string, len(cols))
	labels := make([]string, len(cols))
	for i, col := range cols {
		formats[i] = col.format
		labels[i] = `\textbf{` + col.label + `}`
	}

	var b strings.Builder
	b.WriteString("\\begin{table}\n\\begin{tabular}{")
	b.WriteString(strings.Join(formats, " "))
	b.WriteString("}\n\\toprule\n")
	b.WriteString(strings.Join(labels, " & "))
	b.WriteString(" \\\\\n")
	return blockMode(ModeTableHeader), b.String(), nil
}

// tableHeaderLine handles lines after the header: the "|---" separator is
// skipped, a rule policy phrase picks the body mode, and anything else is
// already the first body row.
func (c *Converter) tableHeaderLine(line string) (Mode, string, error) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "|---"), strings.HasPrefix(trimmed, "| ---"):
		return blockMode(ModeTableHeader), "", nil
	case containsAny(trimmed, ruleEveryRowPhrases):
		return tableBodyMode(true), "", nil
	case containsAny(trimmed, ruleHeaderOnlyPhrases):
		return tableBodyMode(false), "\\midrule\n", nil
	}
	return c.tableBodyLine(line, false)
}

func (c *Converter) tableBodyLine(line string, ruleEveryRow bool) (Mode, string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return blockMode(ModeTableCaption), "\\bottomrule\n\\end{tabular}\n\\caption{", nil
	}

	cells, ok := splitRow(trimmed)
	if !ok {
		return Mode{}, "", fmt.Errorf("%w: row must start and end with '|': %q", ErrMalformedTableRow, line)
	}
	for i := range cells {
		cells[i] = c.Inline(cells[i])
	}

	var b strings.Builder
	if ruleEveryRow {
		b.WriteString("\\midrule\n")
	}
	b.WriteString(strings.Join(cells, " & "))
	b.WriteString(" \\\\\n")
	return tableBodyMode(ruleEveryRow), b.String(), nil
}

func (c *Converter) tableCaptionLine(line string) (Mode, string, error) {
	if isBlank(line) {
		return TextMode(), "}\n\\end{table}\n\n", nil
	}
	return blockMode(ModeTableCaption), c.caption(line), nil
}
