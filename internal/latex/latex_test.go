// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdtex/pkg/types"
)

// --- test helpers ---

func newTestConverter(t *testing.T, cfg types.ConverterConfig) *Converter {
	t.Helper()
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func seqOf(lines ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, l := range lines {
			if !yield(l, nil) {
				return
			}
		}
	}
}

// convertLines runs lines through Convert and collects fragments and
// diagnostics.
func convertLines(c *Converter, lines ...string) ([]string, []types.Diagnostic) {
	var diags []types.Diagnostic
	var frags []string
	for frag := range c.Convert(seqOf(lines...), func(d types.Diagnostic) {
		diags = append(diags, d)
	}) {
		frags = append(frags, frag)
	}
	return frags, diags
}

// stepAll feeds lines through Step from TextMode, keeping the mode on error
// the same way the driver does. It returns the final mode.
func stepAll(t *testing.T, c *Converter, lines ...string) Mode {
	t.Helper()
	m := TextMode()
	for _, l := range lines {
		next, _, err := c.Step(m, l)
		if err == nil {
			m = next
		}
	}
	return m
}

func joined(frags []string) string {
	return strings.Join(frags, "")
}
