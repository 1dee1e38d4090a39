// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mdtex/pkg/types"
)

// ExportYAML writes the runs matching opts, with their diagnostics, to w as
// a YAML sequence. A zero Limit exports every run.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts ListOptions) error {
	runs, err := s.exportRuns(ctx, opts)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(runs); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the runs matching opts, with their diagnostics, to w as
// an indented JSON array. A zero Limit exports every run.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts ListOptions) error {
	runs, err := s.exportRuns(ctx, opts)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func (s *Store) exportRuns(ctx context.Context, opts ListOptions) ([]types.RunRecord, error) {
	if opts.Limit == 0 {
		opts.Limit = -1
	}
	runs, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	for i := range runs {
		if runs[i].Failures == 0 {
			continue
		}
		runs[i].Diagnostics, err = s.Diagnostics(ctx, runs[i].ID)
		if err != nil {
			return nil, fmt.Errorf("querying for export: %w", err)
		}
	}
	if runs == nil {
		runs = []types.RunRecord{}
	}
	return runs, nil
}
