// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/mdtex/pkg/types"
)

func TestInline(t *testing.T) {
	p := MustPatterns()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "Nothing to see here.", "Nothing to see here."},
		{"ampersand escaped", "salt & pepper", `salt \& pepper`},
		{"superscript", "x^2^ + y^2^", `x\textsuperscript{2} + y\textsuperscript{2}`},
		{"bold then mono", "*bold* and `mono`", `\textbf{bold} and \texttt{mono}`},
		{"adjacent bold spans stay apart", "*a* *b*", `\textbf{a} \textbf{b}`},
		{"bold inside mono", "`*x*`", `\texttt{\textbf{x}}`},
		{"single quotes", "say 'hi'", "say `hi'"},
		{"double quotes", `say "hi"`, "say ``hi''"},
		{"emphasis", "_really_ fast", `\emph{really} fast`},
		{"link", "see [the site](https://example.com) now", `see the site \url{https://example.com} now`},
		{"footnote mark", "This is a test[^asdf] of the system.", `This is a test\footnotemark[asdf] of the system.`},
		{"footnote mark beside link", "a[^1] and [b](c)", `a\footnotemark[1] and b \url{c}`},
		{"comment between words", "a<!-- gone -->b", "ab"},
		{"comment keeps surrounding spaces", "a  <!-- gone -->  b", "a    b"},
		{"two comments removed separately", "a <!-- x --> b <!-- y --> c", "a  b  c"},
		{"decomposed accent composed", "*e\u0301t\u0065\u0301*", "\\textbf{\u00e9t\u00e9}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Inline(tt.in))
		})
	}
}

func TestInline_CommentOnlyIsBlank(t *testing.T) {
	p := MustPatterns()
	comment := "<!-- This is a comment and is expected to be removed. -->"
	for _, pad := range []struct{ prefix, suffix string }{
		{"", ""},
		{"   ", ""},
		{"", "   "},
		{"\t", "\t"},
		{"  \t  ", "  \t  "},
	} {
		got := p.Inline(pad.prefix + comment + pad.suffix)
		assert.True(t, isBlank(got), "got %q", got)
	}
}

func TestInline_CommentBetweenWords(t *testing.T) {
	p := MustPatterns()
	comment := "<!-- This is a comment and is expected to be removed. -->"
	for _, pad := range []struct{ prefix, suffix string }{
		{"a", "b"},
		{"a   ", "b"},
		{"a", "   b"},
		{"a\t", "\tb"},
		{"a  \t  ", "  \t  b"},
	} {
		assert.Equal(t, pad.prefix+pad.suffix, p.Inline(pad.prefix+comment+pad.suffix))
	}
}

func TestConverterInline(t *testing.T) {
	c := newTestConverter(t, types.ConverterConfig{})
	assert.Equal(t, `\textbf{x}`, c.Inline("*x*"))
}
