// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the LaTeX converter over Markdown files: one file to
// a writer, or many files into an output directory with per-file status.
package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pdiddy/mdtex/internal/latex"
	"github.com/pdiddy/mdtex/pkg/types"
)

// texExt is the extension given to batch outputs.
const texExt = ".tex"

// Renderer converts the Markdown read from r into LaTeX written to w.
// *latex.Converter implements it.
type Renderer interface {
	Render(ctx context.Context, r io.Reader, w io.Writer, report latex.Reporter) (latex.Stats, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int

	// Records holds one entry per converted or failed file, in input order.
	// Skipped files have no record.
	Records []types.RunRecord
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Convert renders the Markdown in r to w and returns the run record for
// source. Per-line diagnostics are collected into the record and also sent
// to report when it is non-nil.
func Convert(ctx context.Context, c Renderer, source string, r io.Reader, w io.Writer, report latex.Reporter) (types.RunRecord, error) {
	rec := types.RunRecord{Source: source, StartedAt: time.Now().UTC()}

	collect := func(d types.Diagnostic) {
		rec.Diagnostics = append(rec.Diagnostics, d)
		if report != nil {
			report(d)
		}
	}

	st, err := c.Render(ctx, r, w, collect)
	rec.Lines, rec.Fragments, rec.Failures = st.Lines, st.Fragments, st.Failures
	if err != nil {
		rec.Status = types.RunFailed
		rec.Error = err.Error()
		return rec, fmt.Errorf("converting %s: %w", source, err)
	}
	rec.Status = types.StatusFor(st.Lines, st.Failures)
	return rec, nil
}

// ConvertFile converts the Markdown file at src. The LaTeX goes to the file
// dst, or to w when dst is empty. Failing to open src is returned as an
// error and no record is produced; src is opened before dst is created, so
// an existing dst is left alone in that case.
func ConvertFile(ctx context.Context, c Renderer, src, dst string, w io.Writer, report latex.Reporter) (types.RunRecord, error) {
	in, err := os.Open(src)
	if err != nil {
		return types.RunRecord{}, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if dst == "" {
		return Convert(ctx, c, src, in, w, report)
	}

	out, err := os.Create(dst)
	if err != nil {
		return types.RunRecord{}, fmt.Errorf("creating %s: %w", dst, err)
	}
	rec, err := Convert(ctx, c, src, in, out, report)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", dst, cerr)
		rec.Status, rec.Error = types.RunFailed, err.Error()
	}
	return rec, err
}

// OutputPath returns where the batch writes the LaTeX for src: outDir/X.tex
// for src X.md.
func OutputPath(src, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(outDir, base+texExt)
}

// ConvertOne converts src into outDir and prints its status to w. If the
// output already exists and force is false, it is skipped and the returned
// record has status RunNone.
func ConvertOne(ctx context.Context, c Renderer, src, outDir string, force bool, w io.Writer, report latex.Reporter) types.RunRecord {
	outPath := OutputPath(src, outDir)
	name := filepath.Base(src)

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			return types.RunRecord{Source: src, Status: types.RunNone}
		}
	}

	failed := func(err error) types.RunRecord {
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return types.RunRecord{Source: src, StartedAt: time.Now().UTC(), Status: types.RunFailed, Error: err.Error()}
	}

	in, err := os.Open(src)
	if err != nil {
		return failed(fmt.Errorf("opening %s: %w", src, err))
	}
	defer in.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return failed(fmt.Errorf("creating %s: %w", outDir, err))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return failed(fmt.Errorf("creating %s: %w", outPath, err))
	}

	rec, err := Convert(ctx, c, src, in, out, report)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", outPath, cerr)
		rec.Status, rec.Error = types.RunFailed, err.Error()
	}
	if err != nil {
		// A half-written file would be skipped by the next run.
		_ = os.Remove(outPath)
		fmt.Fprintf(w, "failed:  %s (%v)\n", name, err)
		return rec
	}

	if rec.Failures > 0 {
		fmt.Fprintf(w, "converted: %s (%d of %d lines dropped)\n", name, rec.Failures, rec.Lines)
	} else {
		fmt.Fprintf(w, "converted: %s\n", name)
	}
	return rec
}

// ConvertBatch converts each of srcs into outDir, printing per-file status
// to w and returning a summary. It stops early, without a summary, when ctx
// is done.
func ConvertBatch(ctx context.Context, c Renderer, srcs []string, outDir string, force bool, w io.Writer, report latex.Reporter) BatchResult {
	var result BatchResult
	for _, src := range srcs {
		if ctx.Err() != nil {
			return result
		}
		rec := ConvertOne(ctx, c, src, outDir, force, w, report)
		switch rec.Status {
		case types.RunNone:
			result.Skipped++
			continue
		case types.RunFailed:
			result.Failed++
		default:
			result.Converted++
		}
		result.Records = append(result.Records, rec)
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// CollectSources expands args into Markdown file paths. A directory
// contributes its *.md files, sorted; a file is taken as given. Duplicates
// are dropped.
func CollectSources(args []string) ([]string, error) {
	var srcs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", arg, err)
		}
		if !info.IsDir() {
			srcs = append(srcs, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.md"))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", arg, err)
		}
		slices.Sort(matches)
		srcs = append(srcs, matches...)
	}
	seen := make(map[string]bool, len(srcs))
	return slices.DeleteFunc(srcs, func(s string) bool {
		if seen[s] {
			return true
		}
		seen[s] = true
		return false
	}), nil
}
