// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// listStyle is what separates enumerate from itemize: the item marker, the
// environment name and the mode kind.
type listStyle struct {
	kind   ModeKind
	env    string
	marker *regexp.Regexp
}

func (ls *listStyle) begin() string { return `\begin{` + ls.env + "}\n" }
func (ls *listStyle) end() string   { return `\end{` + ls.env + "}\n" }

// openList starts a list from a Text line. The line's indent becomes the
// list's base level.
func (c *Converter) openList(ls *listStyle, line, item string) (Mode, string, error) {
	indent, err := c.indentOf(line)
	if err != nil {
		return Mode{}, "", err
	}
	frag := ls.begin() + `\item ` + c.Inline(item) + "\n"
	return listMode(ls.kind, NewIndentStack(c.cfg.MaxNesting, indent)), frag, nil
}

// listLine handles a line inside an open list.
//
// A blank line closes every level. An item at the current indent is a
// sibling, a deeper one opens a nested list, and a shallower one closes the
// innermost level and retries the line one level out. Any other text
// continues the current item.
func (c *Converter) listLine(ls *listStyle, line string, indents IndentStack) (Mode, string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return TextMode(), strings.Repeat(ls.end(), indents.Len()), nil
	}

	caps, ok := capture(ls.marker, trimmed)
	if !ok {
		return listMode(ls.kind, indents), c.Inline(trimmed) + "\n", nil
	}

	indent, err := c.indentOf(line)
	if err != nil {
		return Mode{}, "", err
	}
	item := `\item ` + c.Inline(caps["item"]) + "\n"

	top := indents.Top()
	switch {
	case indent == top:
		return listMode(ls.kind, indents), item, nil

	case indent > top:
		next, err := indents.Push(indent)
		if err != nil {
			return Mode{}, "", fmt.Errorf("%s: %w", ls.env, err)
		}
		return listMode(ls.kind, next), ls.begin() + item, nil

	default:
		// With indents [2, 4] and an item at 3, closing 4 and retrying
		// opens a new level at 3 under 2.
		if indents.Len() <= 1 {
			return Mode{}, "", fmt.Errorf("%w: item at %d, list starts at %d", ErrNestingUnderflow, indent, top)
		}
		m, frag, err := c.listLine(ls, line, indents.Pop())
		if err != nil {
			return Mode{}, "", err
		}
		return m, ls.end() + frag, nil
	}
}

// indentOf counts the leading whitespace runes of line.
func (c *Converter) indentOf(line string) (int, error) {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	if n > c.cfg.MaxIndent {
		return 0, fmt.Errorf("%w: got %d, at most %d", ErrIndentOverflow, n, c.cfg.MaxIndent)
	}
	return n, nil
}
