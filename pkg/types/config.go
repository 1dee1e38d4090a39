// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Converter defaults applied when a ConverterConfig field is zero.
const (
	DefaultMaxNesting = 4
	DefaultMaxIndent  = 255
)

// ConverterConfig holds settings for the Markdown-to-LaTeX line converter.
type ConverterConfig struct {
	// MaxNesting is the hard cap on open list levels (default 4).
	MaxNesting int `json:"max_nesting" yaml:"max_nesting"`

	// MaxIndent is the largest leading-whitespace count accepted on a list
	// item (default 255).
	MaxIndent int `json:"max_indent" yaml:"max_indent"`

	// Passthrough re-emits a line that failed conversion unchanged instead
	// of dropping it from the output.
	Passthrough bool `json:"passthrough" yaml:"passthrough"`
}

// WithDefaults returns a copy of c with zero fields replaced by defaults.
func (c ConverterConfig) WithDefaults() ConverterConfig {
	if c.MaxNesting <= 0 {
		c.MaxNesting = DefaultMaxNesting
	}
	if c.MaxIndent <= 0 {
		c.MaxIndent = DefaultMaxIndent
	}
	return c
}

// LogConfig selects the level and encoding of diagnostic logs.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`
}

// HistoryConfig holds settings for the run history database.
type HistoryConfig struct {
	// Enabled controls whether conversion runs are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DBPath is the SQLite database file (e.g. ".mdtex/history.db").
	DBPath string `json:"db" yaml:"db"`
}

// ServerConfig holds settings for the HTTP conversion endpoint.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8090").
	Addr string `json:"addr" yaml:"addr"`

	// MaxBodyBytes limits the size of a conversion request body.
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// Config groups all settings for the mdtex CLI.
type Config struct {
	Converter ConverterConfig `json:"converter" yaml:"converter"`
	Log       LogConfig       `json:"log" yaml:"log"`
	History   HistoryConfig   `json:"history" yaml:"history"`
	Server    ServerConfig    `json:"server" yaml:"server"`
}
