// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKind ModeKind
		wantFrag string
	}{
		{"blank", "", ModeText, "\n"},
		{"whitespace only", " \t ", ModeText, "\n"},
		{"title dropped", "# The Document", ModeText, ""},
		{"chapter", "## Intro", ModeText, "\\chapter{Intro}\n"},
		{"section with label", "### []{#sec:a}Setup", ModeText, "\\section{Setup}\\label{sec:a}\n"},
		{"subsection", "#### Details", ModeText, "\\subsection{Details}\n"},
		{"subsubsection", "##### Fine *print*", ModeText, "\\subsubsection{Fine *print*}\n"},
		{"local include", "[Chapter two](./chapters/two.md)", ModeText, "\\input{chapters/two}\n"},
		{"figure", "|figure", ModeFigure, "\\begin{figure}\n"},
		{"literal", "|literal", ModeLiteral, ""},
		{"table", "| A |", ModeTableHeader, "\\begin{table}\n\\begin{tabular}{c}\n\\toprule\n\\textbf{A} \\\\\n"},
		{"listing with language", "```go", ModeCode, "\\begin{lstlisting}[style=go,language=go]\n"},
		{"listing without language", "```", ModeCode, "\\begin{lstlisting}\n"},
		{
			"floating listing",
			"```python<!--lst:test--><!--Hello World-->",
			ModeCode,
			"\\begin{lstlisting}[\n\tstyle=python,\n\tlanguage=python,\n\tlabel=lst:test,\n\tcaption={Hello World},\n\tfloat]\n",
		},
		{"quote", "> Said *loudly*", ModeQuote, "\\begin{displayquote}\nSaid \\textbf{loudly}\n"},
		{"itemize", "- first", ModeUnorderedList, "\\begin{itemize}\n\\item first\n"},
		{"itemize star", "* first", ModeUnorderedList, "\\begin{itemize}\n\\item first\n"},
		{"enumerate", "1. first", ModeOrderedList, "\\begin{enumerate}\n\\item first\n"},
		{"footnote body", "[^n1]A _note_.", ModeFootnoteBody, "\\footnotetext[n1]{\nA \\emph{note}.\n"},
		{"unnumbered equation", "$$", ModeUnnumberedEquation, "\\begin{equation*}\n"},
		{"numbered equation", "$$<!--eq:euler-->", ModeNumberedEquation, "\\begin{equation}\\label{eq:euler}\n"},
		{"whole-line comment", "<!-- note to self -->", ModeText, ""},
		{"prose", "Salt & *pepper*", ModeText, "Salt \\& \\textbf{pepper}\n"},
		{"prose keeps leading space", "  indented", ModeText, "  indented\n"},
		{"remote link is prose", "[site](https://example.com)", ModeText, "site \\url{https://example.com}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConverter(t, defaultConfig)
			m, frag, err := c.Step(TextMode(), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, m.Kind)
			assert.Equal(t, tt.wantFrag, frag)
		})
	}
}

func TestTextLine_ListBaseIndent(t *testing.T) {
	c := newTestConverter(t, defaultConfig)

	m, _, err := c.Step(TextMode(), "   - nested start")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, m.Indents.Levels())
	assert.Equal(t, defaultConfig.WithDefaults().MaxNesting, m.Indents.Cap())
}

func TestHeadingsMatchEveryLevel(t *testing.T) {
	c := newTestConverter(t, defaultConfig)
	const head = "The Chapter/Section/Sub... Header"

	for marker, command := range map[string]string{
		"##":    "chapter",
		"###":   "section",
		"####":  "subsection",
		"#####": "subsubsection",
	} {
		t.Run(command, func(t *testing.T) {
			_, frag, err := c.Step(TextMode(), marker+" "+head)
			require.NoError(t, err)
			assert.Equal(t, `\`+command+`{`+head+"}\n", frag)

			_, frag, err = c.Step(TextMode(), marker+" []{#lbl:go:test}"+head)
			require.NoError(t, err)
			assert.Equal(t, `\`+command+`{`+head+`}\label{lbl:go:test}`+"\n", frag)
		})
	}
}
