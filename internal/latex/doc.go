// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex converts a constrained Markdown dialect into LaTeX body text,
// one input line at a time.
//
// A Converter holds the compiled pattern table and the limits from
// types.ConverterConfig. Each call to Convert runs a small state machine: the
// current Mode decides how the next line is read, and every line yields one
// LaTeX fragment plus the Mode for the following line. Plain text spans go
// through the inline transformer (bold, emphasis, monospace, quotes,
// superscripts, links and footnote marks).
//
// Lines that cannot be converted are reported to a Reporter and dropped; the
// Mode is left as it was before the bad line. When the input ends inside an
// open block no closing markup is emitted.
package latex
