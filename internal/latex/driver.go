// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/pdiddy/mdtex/pkg/types"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Reporter receives one Diagnostic per line that failed conversion.
type Reporter func(types.Diagnostic)

// LogReporter returns a Reporter that logs each failed line at WARN.
func LogReporter(log *slog.Logger) Reporter {
	return func(d types.Diagnostic) {
		log.Warn("line not converted", "line", d.Line, "text", d.Text, "error", d.Message)
	}
}

// Lines returns the lines of r without terminators. A trailing "\r" is
// dropped; the rest of the line is passed on byte for byte. A read error is
// yielded once, with an empty line, and ends the sequence.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for sc.Scan() {
			line := strings.TrimSuffix(sc.Text(), "\r")
			if !yield(line, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", fmt.Errorf("reading input: %w", err))
		}
	}
}

// Convert returns the LaTeX fragments for lines, lazily: nothing is read
// until the caller pulls, and the caller cancels by stopping.
//
// Each line is passed to Step with the current Mode. On success the Mode
// advances and the fragment is yielded. On failure (including a read error
// from lines) the Diagnostic goes to report, the Mode is kept, and the line
// is dropped. When Passthrough is set, a line that Step rejected is
// re-emitted unchanged; a read error has no line and emits nothing. Open
// blocks are not closed at end of input.
func (c *Converter) Convert(lines iter.Seq2[string, error], report Reporter) iter.Seq[string] {
	if report == nil {
		report = func(types.Diagnostic) {}
	}
	return func(yield func(string) bool) {
		mode := TextMode()
		n := 0
		for line, err := range lines {
			n++
			if err != nil {
				report(types.Diagnostic{Line: n, Text: line, Message: err.Error()})
				continue
			}
			next, frag, err := c.Step(mode, line)
			if err != nil {
				report(types.Diagnostic{Line: n, Text: line, Message: err.Error()})
				if c.cfg.Passthrough && !yield(line+"\n") {
					return
				}
				continue
			}
			mode = next
			if !yield(frag) {
				return
			}
		}
	}
}

// Stats counts what one Render call did.
type Stats struct {
	Lines     int `json:"lines" yaml:"lines"`
	Fragments int `json:"fragments" yaml:"fragments"`
	Failures  int `json:"failures" yaml:"failures"`
}

// Render converts all of r into w. It stops reading when ctx is done and
// returns ctx.Err() in that case. Failed lines are counted and forwarded to
// report.
func (c *Converter) Render(ctx context.Context, r io.Reader, w io.Writer, report Reporter) (Stats, error) {
	var st Stats

	lines := func(yield func(string, error) bool) {
		for line, err := range Lines(r) {
			if ctx.Err() != nil {
				return
			}
			if err == nil {
				st.Lines++
			}
			if !yield(line, err) {
				return
			}
		}
	}
	counting := func(d types.Diagnostic) {
		st.Failures++
		if report != nil {
			report(d)
		}
	}

	for frag := range c.Convert(lines, counting) {
		if _, err := io.WriteString(w, frag); err != nil {
			return st, fmt.Errorf("writing output: %w", err)
		}
		st.Fragments++
	}
	return st, ctx.Err()
}
