// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdtex/internal/history"
	"github.com/pdiddy/mdtex/pkg/types"
)

// Configuration keys.
const (
	keyMaxNesting   = "converter.max_nesting"
	keyMaxIndent    = "converter.max_indent"
	keyPassthrough  = "converter.passthrough"
	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
	keyHistory      = "history.enabled"
	keyHistoryDB    = "history.db"
	keyServerAddr   = "server.addr"
	keyMaxBodyBytes = "server.max_body_bytes"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyMaxNesting, types.DefaultMaxNesting)
	v.SetDefault(keyMaxIndent, types.DefaultMaxIndent)
	v.SetDefault(keyPassthrough, false)
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyHistory, false)
	v.SetDefault(keyHistoryDB, history.DefaultDBPath)
	v.SetDefault(keyServerAddr, ":8090")
	v.SetDefault(keyMaxBodyBytes, 1<<20)
}

// loadConfig reads the effective configuration from v: flags, then
// environment, then config file, then defaults.
func loadConfig(v *viper.Viper) types.Config {
	return types.Config{
		Converter: types.ConverterConfig{
			MaxNesting:  v.GetInt(keyMaxNesting),
			MaxIndent:   v.GetInt(keyMaxIndent),
			Passthrough: v.GetBool(keyPassthrough),
		}.WithDefaults(),
		Log: types.LogConfig{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
		},
		History: types.HistoryConfig{
			Enabled: v.GetBool(keyHistory),
			DBPath:  v.GetString(keyHistoryDB),
		},
		Server: types.ServerConfig{
			Addr:         v.GetString(keyServerAddr),
			MaxBodyBytes: v.GetInt64(keyMaxBodyBytes),
		},
	}
}

// newLogger builds the diagnostic logger described by cfg, writing to w.
func newLogger(cfg types.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: use text or json", cfg.Format)
	}
}

// setup loads the configuration and its logger for cmd.
func setup(cmd *cobra.Command) (types.Config, *slog.Logger, error) {
	cfg := loadConfig(viper.GetViper())
	log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}
	log.Debug("configuration loaded",
		"command", cmd.Name(),
		"flags", changedFlags(cmd.Flags()),
		"config_file", viper.ConfigFileUsed(),
	)
	return cfg, log, nil
}

// openHistory opens the history store when recording is enabled. It returns
// nil, nil when it is not.
func openHistory(cfg types.HistoryConfig) (*history.Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	store, err := history.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return store, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the configuration mdtex would run with after merging
flags, MDTEX_* environment variables, the config file and defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(loadConfig(viper.GetViper())); err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		return enc.Close()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
