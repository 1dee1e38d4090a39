// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "quote",
			lines: []string{"> first *line*", "> second", "third", ""},
			want: []string{
				"\\begin{displayquote}\nfirst \\textbf{line}\n",
				"second\n",
				"third\n",
				"\\end{displayquote}\n\n",
			},
		},
		{
			name:  "code is verbatim",
			lines: []string{"```go", "x := *p & 'q'", "", "```"},
			want: []string{
				"\\begin{lstlisting}[style=go,language=go]\n",
				"x := *p & 'q'\n",
				"\n",
				"\\end{lstlisting}\n",
			},
		},
		{
			name:  "code fence with trailing spaces closes",
			lines: []string{"```", "a", "```  "},
			want:  []string{"\\begin{lstlisting}\n", "a\n", "\\end{lstlisting}\n"},
		},
		{
			name:  "indented fence does not close",
			lines: []string{"```", "  ```", "```"},
			want:  []string{"\\begin{lstlisting}\n", "  ```\n", "\\end{lstlisting}\n"},
		},
		{
			name: "figure with caption and label",
			lines: []string{
				"|figure",
				`\includegraphics{a.png}`,
				"   ",
				"A *caption*",
				`\label{fig:a}`,
				"",
			},
			want: []string{
				"\\begin{figure}\n",
				"\\includegraphics{a.png}\n",
				"\n\\caption{",
				"A \\textbf{caption}\n",
				"\\label{fig:a}\n",
				"}\n\\end{figure}\n\n",
			},
		},
		{
			name:  "literal",
			lines: []string{"|literal", `\newpage`, "*kept*", ""},
			want:  []string{"", "\\newpage\n", "*kept*\n", ""},
		},
		{
			name:  "footnote body",
			lines: []string{"[^a]Body *b*", "more", ""},
			want:  []string{"\\footnotetext[a]{\nBody \\textbf{b}\n", "more\n", "}\n\n"},
		},
		{
			name:  "unnumbered equation",
			lines: []string{"$$", "a^2^ + b", "$$"},
			want:  []string{"\\begin{equation*}\n", "a^2^ + b\n", "\\end{equation*}\n"},
		},
		{
			name:  "numbered equation",
			lines: []string{"$$<!--eq:e-->", "e^{i\\pi} = -1", " $$ "},
			want:  []string{"\\begin{equation}\\label{eq:e}\n", "e^{i\\pi} = -1\n", "\\end{equation}\n"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConverter(t, defaultConfig)
			frags, diags := convertLines(c, tt.lines...)
			require.Empty(t, diags)
			assert.Equal(t, tt.want, frags)
		})
	}
}

func TestBlocksReturnToText(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"quote", []string{"> q", ""}},
		{"code", []string{"```", "```"}},
		{"figure", []string{"|figure", "x", "", "cap", ""}},
		{"table", []string{"| A |", "| a |", "", "cap", ""}},
		{"literal", []string{"|literal", "x", ""}},
		{"footnote", []string{"[^a]b", ""}},
		{"equation", []string{"$$", "x", "$$"}},
		{"list", []string{"- a", "  - b", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConverter(t, defaultConfig)
			assert.Equal(t, ModeText, stepAll(t, c, tt.lines...).Kind)
		})
	}
}

func TestQuoteAtEndOfInputStaysOpen(t *testing.T) {
	c := newTestConverter(t, defaultConfig)

	frags, diags := convertLines(c, "> never closed", "> still open")
	require.Empty(t, diags)
	assert.Equal(t, []string{"\\begin{displayquote}\nnever closed\n", "still open\n"}, frags)
	assert.NotContains(t, joined(frags), `\end{displayquote}`)
}
