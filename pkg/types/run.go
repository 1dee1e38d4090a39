// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus summarizes the outcome of one conversion run.
type RunStatus string

const (
	RunNone    RunStatus = "none"
	RunDone    RunStatus = "converted"
	RunPartial RunStatus = "partial"
	RunFailed  RunStatus = "failed"
)

// Diagnostic describes one input line that could not be converted.
type Diagnostic struct {
	// Line is the 1-based input line number.
	Line int `json:"line" yaml:"line"`

	// Text is the raw input line.
	Text string `json:"text" yaml:"text"`

	// Message is the human-readable error.
	Message string `json:"message" yaml:"message"`
}

// RunRecord holds the outcome of converting one Markdown source.
type RunRecord struct {
	// ID is assigned by the history store; zero until recorded.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// Source names the input (a file path, or "http" for served requests).
	Source string `json:"source" yaml:"source"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Lines is the number of input lines read.
	Lines int `json:"lines" yaml:"lines"`

	// Fragments is the number of LaTeX fragments emitted.
	Fragments int `json:"fragments" yaml:"fragments"`

	// Failures is the number of lines that failed conversion.
	Failures int `json:"failures" yaml:"failures"`

	// Status is the overall outcome.
	Status RunStatus `json:"status" yaml:"status"`

	// Error is set when the run could not read its input or write its
	// output at all.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Diagnostics lists the failed lines in input order.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// StatusFor derives the run status from failure and line counts.
func StatusFor(lines, failures int) RunStatus {
	switch {
	case failures == 0:
		return RunDone
	case failures < lines:
		return RunPartial
	default:
		return RunFailed
	}
}
