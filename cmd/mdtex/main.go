// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdtex CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdtex CLI.
var rootCmd = &cobra.Command{
	Use:   "mdtex",
	Short: "Convert constrained Markdown into LaTeX",
	Long: `mdtex converts a constrained Markdown dialect into LaTeX body text, one
line at a time. Headings, lists, quotes, listings, figures, tables,
footnotes and equations become their LaTeX environments; inline bold,
emphasis, monospace, quotes, superscripts and links become commands.

Lines that cannot be converted are logged and dropped (or passed through
unchanged with --passthrough); conversion always continues with the next
line.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./mdtex.yaml or ~/.config/mdtex/mdtex.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
	pf.Int("max-nesting", 0, "maximum list nesting depth")
	pf.Int("max-indent", 0, "largest leading indent accepted on a list item")
	pf.Bool("passthrough", false, "emit lines that fail conversion unchanged instead of dropping them")
	pf.Bool("history", false, "record runs in the history database")
	pf.String("history-db", "", "history database path")

	bindFlags(pf, persistentBindings)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdtex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdtex"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("MDTEX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
