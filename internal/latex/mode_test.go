// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentStack(t *testing.T) {
	s := NewIndentStack(3, 0)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 3, s.Cap())
	assert.Equal(t, 0, s.Top())

	s2, err := s.Push(2)
	require.NoError(t, err)
	s3, err := s2.Push(4)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, s3.Levels())
	assert.Equal(t, 4, s3.Top())

	// Value semantics: earlier stacks are untouched.
	assert.Equal(t, []int{0}, s.Levels())
	assert.Equal(t, []int{0, 2}, s2.Levels())

	_, err = s3.Push(6)
	assert.True(t, errors.Is(err, ErrNestingOverflow))

	popped := s3.Pop()
	assert.Equal(t, []int{0, 2}, popped.Levels())
	assert.Equal(t, []int{0, 2, 4}, s3.Levels())

	// Pushing onto a popped stack must not write into s3's storage.
	s4, err := popped.Push(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, s4.Levels())
	assert.Equal(t, []int{0, 2, 4}, s3.Levels())
}

func TestIndentStack_TopOnEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { IndentStack{}.Top() })
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "text", TextMode().String())
	assert.Equal(t, "quote", blockMode(ModeQuote).String())
	assert.Equal(t, "unordered-list[0 2]", listMode(ModeUnorderedList, IndentStack{levels: []int{0, 2}, limit: 4}).String())
	assert.Equal(t, "table-body(rule every row: true)", tableBodyMode(true).String())
	assert.Equal(t, "mode(99)", ModeKind(99).String())
}

func TestStepUnknownModePanics(t *testing.T) {
	c := newTestConverter(t, defaultConfig)
	assert.Panics(t, func() { _, _, _ = c.Step(Mode{Kind: ModeKind(99)}, "x") })
}
