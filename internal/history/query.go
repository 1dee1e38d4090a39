// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/mdtex/pkg/types"
)

// ErrRunNotFound is returned by Get for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// defaultLimit caps List when ListOptions.Limit is zero.
const defaultLimit = 20

// ListOptions holds filters for run queries.
type ListOptions struct {
	// Source filters by exact source name.
	Source string

	// Status filters by run status.
	Status types.RunStatus

	// Limit caps the result count. Zero uses the default of 20; a negative
	// value means no limit.
	Limit int
}

// List returns runs newest first, without their diagnostics.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.RunRecord, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(
		`SELECT id, source, started_at, lines, fragments, failures, status, error
		FROM runs
		WHERE 1=1`)

	if opts.Source != "" {
		qb.WriteString(` AND source = ?`)
		args = append(args, opts.Source)
	}
	if opts.Status != "" {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(opts.Status))
	}

	qb.WriteString(` ORDER BY started_at DESC, id DESC`)

	limit := opts.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// Get returns one run with its diagnostics.
func (s *Store) Get(ctx context.Context, id int64) (types.RunRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source, started_at, lines, fragments, failures, status, error
		FROM runs WHERE id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.RunRecord{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return types.RunRecord{}, err
	}

	rec.Diagnostics, err = s.Diagnostics(ctx, id)
	if err != nil {
		return types.RunRecord{}, err
	}
	return rec, nil
}

// Diagnostics returns the diagnostics of run id in line order.
func (s *Store) Diagnostics(ctx context.Context, id int64) ([]types.Diagnostic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT line, text, message FROM diagnostics WHERE run_id = ? ORDER BY line`, id)
	if err != nil {
		return nil, fmt.Errorf("querying diagnostics: %w", err)
	}
	defer rows.Close()

	var diags []types.Diagnostic
	for rows.Next() {
		var d types.Diagnostic
		if err := rows.Scan(&d.Line, &d.Text, &d.Message); err != nil {
			return nil, fmt.Errorf("scanning diagnostic: %w", err)
		}
		diags = append(diags, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diagnostics: %w", err)
	}
	return diags, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (types.RunRecord, error) {
	var (
		rec       types.RunRecord
		startedAt string
		status    string
		errText   sql.NullString
	)
	if err := sc.Scan(&rec.ID, &rec.Source, &startedAt,
		&rec.Lines, &rec.Fragments, &rec.Failures, &status, &errText); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scanning run: %w", err)
	}

	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return rec, fmt.Errorf("parsing started_at of run %d: %w", rec.ID, err)
	}
	rec.StartedAt = t
	rec.Status = types.RunStatus(status)
	rec.Error = errText.String
	return rec, nil
}
