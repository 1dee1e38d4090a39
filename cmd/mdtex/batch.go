// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtex/internal/convert"
	"github.com/pdiddy/mdtex/internal/latex"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files or directories...]",
	Short: "Convert many Markdown files into a directory of .tex files",
	Long: `Batch converts each Markdown file into --out-dir, so X.md becomes X.tex.
A directory argument contributes every *.md file directly inside it.
Files whose output already exists are skipped unless --force is given.

Each file's status is printed as it finishes, followed by a summary. The
command fails if any file could not be read or written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	force, _ := cmd.Flags().GetBool("force")

	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	srcs, err := convert.CollectSources(args)
	if err != nil {
		return err
	}
	if len(srcs) == 0 {
		return fmt.Errorf("no Markdown files found in %v", args)
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

	result := convert.ConvertBatch(cmd.Context(), conv, srcs, outDir, force, cmd.OutOrStdout(), latex.LogReporter(log))

	if store != nil {
		if err := store.RecordAll(cmd.Context(), result.Records); err != nil {
			log.Warn("recording runs", "error", err)
		}
	}

	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("out-dir", "tex", "directory for the .tex outputs")
	batchCmd.Flags().Bool("force", false, "overwrite outputs that already exist")

	rootCmd.AddCommand(batchCmd)
}
