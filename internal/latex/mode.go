// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"slices"
)

// ModeKind tags the state the converter is in between two lines.
type ModeKind int

const (
	ModeText ModeKind = iota
	ModeOrderedList
	ModeUnorderedList
	ModeQuote
	ModeCode
	ModeFigure
	ModeFigureCaption
	ModeTableHeader
	ModeTableBody
	ModeTableCaption
	ModeLiteral
	ModeFootnoteBody
	ModeNumberedEquation
	ModeUnnumberedEquation
)

var modeNames = [...]string{
	ModeText:               "text",
	ModeOrderedList:        "ordered-list",
	ModeUnorderedList:      "unordered-list",
	ModeQuote:              "quote",
	ModeCode:               "code",
	ModeFigure:             "figure",
	ModeFigureCaption:      "figure-caption",
	ModeTableHeader:        "table-header",
	ModeTableBody:          "table-body",
	ModeTableCaption:       "table-caption",
	ModeLiteral:            "literal",
	ModeFootnoteBody:       "footnote-body",
	ModeNumberedEquation:   "numbered-equation",
	ModeUnnumberedEquation: "unnumbered-equation",
}

func (k ModeKind) String() string {
	if k < 0 || int(k) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(k))
	}
	return modeNames[k]
}

// Mode is the whole state carried from one line to the next. Indents is
// set only for the two list kinds; RuleEveryRow only for ModeTableBody.
type Mode struct {
	Kind         ModeKind
	Indents      IndentStack
	RuleEveryRow bool
}

// TextMode returns the default mode a conversion starts in.
func TextMode() Mode {
	return Mode{Kind: ModeText}
}

func blockMode(kind ModeKind) Mode {
	return Mode{Kind: kind}
}

func listMode(kind ModeKind, indents IndentStack) Mode {
	return Mode{Kind: kind, Indents: indents}
}

func tableBodyMode(ruleEveryRow bool) Mode {
	return Mode{Kind: ModeTableBody, RuleEveryRow: ruleEveryRow}
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeOrderedList, ModeUnorderedList:
		return fmt.Sprintf("%s%v", m.Kind, m.Indents.levels)
	case ModeTableBody:
		return fmt.Sprintf("%s(rule every row: %t)", m.Kind, m.RuleEveryRow)
	}
	return m.Kind.String()
}

// IndentStack records the leading-whitespace count of every open list
// level, innermost last. It has a fixed capacity and value semantics: Push
// and Pop return new stacks and never touch the receiver.
type IndentStack struct {
	levels []int
	limit  int
}

// NewIndentStack returns a stack holding only base, able to grow to limit
// levels.
func NewIndentStack(limit, base int) IndentStack {
	return IndentStack{levels: []int{base}, limit: limit}
}

// Len returns the number of open levels.
func (s IndentStack) Len() int { return len(s.levels) }

// Cap returns the maximum number of levels.
func (s IndentStack) Cap() int { return s.limit }

// Levels returns a copy of the indents, outermost first.
func (s IndentStack) Levels() []int { return slices.Clone(s.levels) }

// Top returns the indent of the innermost level. List modes always carry a
// non-empty stack, so an empty one here is a bug.
func (s IndentStack) Top() int {
	if len(s.levels) == 0 {
		panic("latex: Top called on an empty indent stack")
	}
	return s.levels[len(s.levels)-1]
}

// Push opens a new innermost level at indent.
func (s IndentStack) Push(indent int) (IndentStack, error) {
	if len(s.levels) >= s.limit {
		return s, fmt.Errorf("%w: at most %d levels", ErrNestingOverflow, s.limit)
	}
	levels := make([]int, len(s.levels), len(s.levels)+1)
	copy(levels, s.levels)
	return IndentStack{levels: append(levels, indent), limit: s.limit}, nil
}

// Pop closes the innermost level.
func (s IndentStack) Pop() IndentStack {
	n := len(s.levels) - 1
	return IndentStack{levels: s.levels[:n:n], limit: s.limit}
}
