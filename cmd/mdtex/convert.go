// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtex/internal/convert"
	"github.com/pdiddy/mdtex/internal/latex"
)

var convertCmd = &cobra.Command{
	Use:   "convert -f FILE",
	Short: "Convert one Markdown file to LaTeX",
	Long: `Convert reads a Markdown file and writes the LaTeX body to stdout, or to
the file named by --output. Lines that cannot be converted are logged to
stderr and dropped; the command still succeeds. Failing to open the input
file is an error.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("filename")
	outPath, _ := cmd.Flags().GetString("output")

	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	conv, err := latex.New(cfg.Converter)
	if err != nil {
		return err
	}

	store, err := openHistory(cfg.History)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	rec, err := convert.ConvertFile(cmd.Context(), conv, path, outPath, cmd.OutOrStdout(), latex.LogReporter(log))
	if err != nil {
		return err
	}
	log.Info("converted", "source", path, "lines", rec.Lines, "failures", rec.Failures, "status", rec.Status)

	if store != nil {
		if _, err := store.Record(cmd.Context(), rec); err != nil {
			log.Warn("recording run", "source", path, "error", err)
		}
	}
	return nil
}

func init() {
	convertCmd.Flags().StringP("filename", "f", "", "Markdown file to convert")
	convertCmd.Flags().StringP("output", "o", "", "write LaTeX to this file instead of stdout")
	_ = convertCmd.MarkFlagRequired("filename")

	rootCmd.AddCommand(convertCmd)
}
