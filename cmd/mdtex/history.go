// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtex/internal/history"
	"github.com/pdiddy/mdtex/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded conversion runs (list, show, export, prune)",
	Long: `History reads the SQLite database that convert, batch and serve write to
when history.enabled is set (or --history is given). Each run records its
source, line counts, status and the lines that failed conversion.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(cmd.Context(), listOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRuns(cmd.OutOrStdout(), runs, jsonOutput)
}

func formatRuns(w io.Writer, runs []types.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		if runs == nil {
			runs = []types.RunRecord{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-6s  %-20s  %-30s  %-9s  %6s  %8s\n",
		"ID", "Started", "Source", "Status", "Lines", "Failures")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for _, r := range runs {
		source := r.Source
		if len(source) > 30 {
			source = "..." + source[len(source)-27:]
		}
		fmt.Fprintf(w, "%-6d  %-20s  %-30s  %-9s  %6d  %8d\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), source, r.Status, r.Lines, r.Failures)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}

// --- show subcommand ---

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run and the lines that failed conversion",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Run %d: %s\n", rec.ID, rec.Source)
	fmt.Fprintf(w, "  started:   %s\n", rec.StartedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "  status:    %s\n", rec.Status)
	fmt.Fprintf(w, "  lines:     %d (%d fragments, %d failures)\n", rec.Lines, rec.Fragments, rec.Failures)
	if rec.Error != "" {
		fmt.Fprintf(w, "  error:     %s\n", rec.Error)
	}
	for _, d := range rec.Diagnostics {
		fmt.Fprintf(w, "  line %d: %s\n    %s\n", d.Line, d.Message, d.Text)
	}
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to YAML or JSON",
	Long: `Export writes recorded runs, with their diagnostics, to stdout or to the
file named by --out. Supports the same filter flags as list; by default
every run is exported.`,
	Args: cobra.NoArgs,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var export func(w io.Writer) error
	opts := listOptsFromFlags(cmd)
	switch format {
	case "yaml", "":
		export = func(w io.Writer) error { return store.ExportYAML(cmd.Context(), w, opts) }
	case "json":
		export = func(w io.Writer) error { return store.ExportJSON(cmd.Context(), w, opts) }
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if outPath == "" {
		return export(cmd.OutOrStdout())
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", outPath)
	return nil
}

// --- prune subcommand ---

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the newest runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Prune(cmd.Context(), keep)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pruned %d run(s), kept at most %d\n", n, keep)
		return nil
	},
}

// --- shared helpers ---

// openStore opens the history database whether or not recording is enabled.
func openStore(cmd *cobra.Command) (*history.Store, error) {
	cfg, _, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	store, err := history.NewStore(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return store, nil
}

func listOptsFromFlags(cmd *cobra.Command) history.ListOptions {
	source, _ := cmd.Flags().GetString("source")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	return history.ListOptions{
		Source: source,
		Status: types.RunStatus(status),
		Limit:  limit,
	}
}

func init() {
	// List flags.
	historyListCmd.Flags().String("source", "", "filter by source")
	historyListCmd.Flags().String("status", "", "filter by status: converted, partial, failed")
	historyListCmd.Flags().Int("limit", 0, "maximum runs (0 = 20, -1 = all)")
	historyListCmd.Flags().Bool("json", false, "output runs as JSON")

	// Export flags.
	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("out", "", "write to this file instead of stdout")
	historyExportCmd.Flags().String("source", "", "filter by source for partial export")
	historyExportCmd.Flags().String("status", "", "filter by status for partial export")
	historyExportCmd.Flags().Int("limit", 0, "maximum runs to export (0 = all)")

	// Prune flags.
	historyPruneCmd.Flags().Int("keep", 100, "number of newest runs to keep")

	// Wire subcommands.
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyPruneCmd)

	rootCmd.AddCommand(historyCmd)
}
