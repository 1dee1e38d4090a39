// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"

	"github.com/pdiddy/mdtex/pkg/types"
)

// Converter turns Markdown lines into LaTeX fragments. It holds no
// per-document state, so one Converter may run many conversions at once;
// each Convert call owns its own Mode.
type Converter struct {
	cfg  types.ConverterConfig
	pats *Patterns

	ordered   listStyle
	unordered listStyle
}

// New compiles the pattern table and returns a Converter for cfg. Zero
// fields in cfg take their defaults.
func New(cfg types.ConverterConfig) (*Converter, error) {
	pats, err := NewPatterns()
	if err != nil {
		return nil, fmt.Errorf("building pattern table: %w", err)
	}
	return NewWithPatterns(pats, cfg), nil
}

// NewWithPatterns returns a Converter that shares an already compiled
// pattern table.
func NewWithPatterns(pats *Patterns, cfg types.ConverterConfig) *Converter {
	return &Converter{
		cfg:       cfg.WithDefaults(),
		pats:      pats,
		ordered:   listStyle{kind: ModeOrderedList, env: "enumerate", marker: pats.startEnumerate},
		unordered: listStyle{kind: ModeUnorderedList, env: "itemize", marker: pats.startItemize},
	}
}

// Config returns the effective configuration, defaults applied.
func (c *Converter) Config() types.ConverterConfig {
	return c.cfg
}

// Inline applies the inline transformer to s.
func (c *Converter) Inline(s string) string {
	return c.pats.Inline(s)
}

// Step converts one line read in mode m. It returns the mode for the next
// line and the LaTeX fragment for this one. On error the caller must keep m.
func (c *Converter) Step(m Mode, line string) (Mode, string, error) {
	switch m.Kind {
	case ModeText:
		return c.textLine(line)
	case ModeOrderedList:
		return c.listLine(&c.ordered, line, m.Indents)
	case ModeUnorderedList:
		return c.listLine(&c.unordered, line, m.Indents)
	case ModeQuote:
		return c.quoteLine(line)
	case ModeCode:
		return c.codeLine(line)
	case ModeFigure:
		return c.figureLine(line)
	case ModeFigureCaption:
		return c.figureCaptionLine(line)
	case ModeTableHeader:
		return c.tableHeaderLine(line)
	case ModeTableBody:
		return c.tableBodyLine(line, m.RuleEveryRow)
	case ModeTableCaption:
		return c.tableCaptionLine(line)
	case ModeLiteral:
		return c.literalLine(line)
	case ModeFootnoteBody:
		return c.footnoteBodyLine(line)
	case ModeNumberedEquation:
		return c.equationLine(line, ModeNumberedEquation, "equation")
	case ModeUnnumberedEquation:
		return c.equationLine(line, ModeUnnumberedEquation, "equation*")
	}
	panic(fmt.Sprintf("latex: no handler for %s", m.Kind))
}
