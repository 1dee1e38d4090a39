// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import "errors"

// Sentinel errors returned by the mode handlers. Handlers wrap them with the
// offending values, so callers should test with errors.Is.
var (
	ErrIndentOverflow       = errors.New("leading indent out of range")
	ErrNestingOverflow      = errors.New("list nesting limit exceeded")
	ErrNestingUnderflow     = errors.New("indent is smaller than the list's initial indent")
	ErrMalformedTableRow    = errors.New("malformed table row")
	ErrMalformedTableHeader = errors.New("malformed table header")
)
