// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatterns(t *testing.T) {
	p, err := NewPatterns()
	require.NoError(t, err)
	assert.Len(t, p.headings, 4)
	assert.Len(t, p.inline, 8)

	names := make([]string, len(p.inline))
	for i, r := range p.inline {
		names[i] = r.name
	}
	assert.Equal(t, []string{
		"superscript", "bold", "mono", "single quote",
		"double quote", "emphasis", "link", "footnote mark",
	}, names)
}

func TestMustPatterns(t *testing.T) {
	assert.NotPanics(t, func() { MustPatterns() })
}

func TestHeadingPatterns(t *testing.T) {
	p := MustPatterns()
	const head = "The Chapter/Section/Sub... Header"
	const label = "lbl:go:test"

	markers := map[string]string{
		"subsubsection": "#####",
		"subsection":    "####",
		"section":       "###",
		"chapter":       "##",
	}
	for _, h := range p.headings {
		marker, ok := markers[h.command]
		require.True(t, ok, "unexpected heading command %s", h.command)

		t.Run(h.command+" plain", func(t *testing.T) {
			caps, ok := capture(h.re, fmt.Sprintf("%s %s", marker, head))
			require.True(t, ok)
			assert.Equal(t, head, caps["head"])
			_, hasLabel := caps["label"]
			assert.False(t, hasLabel)
		})

		t.Run(h.command+" labelled", func(t *testing.T) {
			caps, ok := capture(h.re, fmt.Sprintf("%s []{#%s}%s", marker, label, head))
			require.True(t, ok)
			assert.Equal(t, head, caps["head"])
			assert.Equal(t, label, caps["label"])
		})
	}
}

func TestTableColumnPattern(t *testing.T) {
	p := MustPatterns()
	tests := []struct {
		name      string
		cell      string
		wantDesc  string
		wantLabel string
	}{
		{
			name:      "simple descriptor",
			cell:      "<!-- c --> Centered Column Header",
			wantDesc:  "c",
			wantLabel: "Centered Column Header",
		},
		{
			name:      "complex descriptor",
			cell:      `<!-- >{\raggedright\arraybackslash}m{4cm}--> Centered Column Header`,
			wantDesc:  `>{\raggedright\arraybackslash}m{4cm}`,
			wantLabel: "Centered Column Header",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps, ok := capture(p.tableColumn, tt.cell)
			require.True(t, ok)
			assert.Equal(t, tt.wantDesc, strings.TrimSpace(caps["desc"]))
			assert.Equal(t, tt.wantLabel, strings.TrimSpace(caps["label"]))
		})
	}

	t.Run("no descriptor", func(t *testing.T) {
		caps, ok := capture(p.tableColumn, "Plain")
		require.True(t, ok)
		_, hasDesc := caps["desc"]
		assert.False(t, hasDesc)
		assert.Equal(t, "Plain", caps["label"])
	})
}

func TestBlockPatterns(t *testing.T) {
	p := MustPatterns()

	t.Run("footnote body", func(t *testing.T) {
		caps, ok := capture(p.footnoteBody, "[^asdf]This is a test of the system.")
		require.True(t, ok)
		assert.Equal(t, "asdf", caps["mark"])
		assert.Equal(t, "This is a test of the system.", caps["body"])
	})

	t.Run("local link", func(t *testing.T) {
		caps, ok := capture(p.linkToLocal, "[This should be ignored](./a_linked/page.md)")
		require.True(t, ok)
		assert.Equal(t, "This should be ignored", caps["label"])
		assert.Equal(t, "a_linked/page", caps["path"])
	})

	t.Run("numbered equation", func(t *testing.T) {
		caps, ok := capture(p.numEquation, "$$<!--eq:test-->")
		require.True(t, ok)
		assert.Equal(t, "eq:test", caps["label"])
	})

	t.Run("floating listing", func(t *testing.T) {
		caps, ok := capture(p.codeFloat, "```python<!--lst:test--><!--Hello World, this is a caption!-->")
		require.True(t, ok)
		assert.Equal(t, "python", caps["lang"])
		assert.Equal(t, "lst:test", caps["label"])
		assert.Equal(t, "Hello World, this is a caption!", caps["caption"])
	})

	t.Run("bare fence", func(t *testing.T) {
		caps, ok := capture(p.codeFence, "```")
		require.True(t, ok)
		assert.Equal(t, "", caps["lang"])
	})

	t.Run("line comment", func(t *testing.T) {
		assert.True(t, p.lineComment.MatchString("<!-- whole line -->"))
		assert.False(t, p.lineComment.MatchString("text <!-- trailing -->"))
	})
}
