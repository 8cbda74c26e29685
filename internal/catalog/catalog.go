// Package catalog records generation runs and their exported parts in a
// SQLite database, so print files can be traced back to the exact
// design parameters that produced them.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Part statuses recorded per export attempt.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one invocation of the generator.
type Run struct {
	ID               string  `json:"id"`
	CreatedAt        string  `json:"created_at"`
	DesignFile       string  `json:"design_file"`
	ResolutionMM     float64 `json:"resolution_mm"`
	TargetMultiplier float64 `json:"target_multiplier"`
	ActualMultiplier float64 `json:"actual_multiplier"`
}

// PartRecord is one part within a run.
type PartRecord struct {
	RunID     string  `json:"run_id"`
	Name      string  `json:"name"`
	File      string  `json:"file"`
	Quantity  int     `json:"quantity"`
	Status    string  `json:"status"`
	Triangles int     `json:"triangles"`
	VolumeMM3 float64 `json:"volume_mm3"`
	SizeX     float64 `json:"size_x_mm"`
	SizeY     float64 `json:"size_y_mm"`
	SizeZ     float64 `json:"size_z_mm"`
}

// NewRunID returns a time-ordered unique run id, so the catalog lists
// chronologically even across machines.
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Store is the catalog database handle.
type Store struct {
	db *sql.DB
}

// Open creates or opens the catalog at path. WAL mode allows reading
// the catalog while a long generation run is writing to it. Idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect catalog: %w", err)
	}

	// SQLite allows one writer; a single connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply catalog schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// WriteRun inserts a run record. Duplicate ids are silently ignored so
// retried writes stay idempotent.
func (s *Store) WriteRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, design_file, resolution_mm, target_multiplier, actual_multiplier)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, r.ID, r.DesignFile, r.ResolutionMM, r.TargetMultiplier, r.ActualMultiplier)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}
	return nil
}

// WritePart inserts a part record. A run holds at most one record per
// part name; duplicates are silently ignored.
func (s *Store) WritePart(ctx context.Context, p PartRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parts
		(run_id, name, file, quantity, status, triangles, volume_mm3, size_x_mm, size_y_mm, size_z_mm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`, p.RunID, p.Name, p.File, p.Quantity, p.Status,
		p.Triangles, p.VolumeMM3, p.SizeX, p.SizeY, p.SizeZ)
	if err != nil {
		return fmt.Errorf("write part %s: %w", p.Name, err)
	}
	return nil
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, design_file, resolution_mm, target_multiplier, actual_multiplier
		FROM runs ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.DesignFile,
			&r.ResolutionMM, &r.TargetMultiplier, &r.ActualMultiplier); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ListParts returns the parts of one run in name order.
func (s *Store) ListParts(ctx context.Context, runID string) ([]PartRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, name, file, quantity, status, triangles, volume_mm3,
		       size_x_mm, size_y_mm, size_z_mm
		FROM parts WHERE run_id = ? ORDER BY name
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var out []PartRecord
	for rows.Next() {
		var p PartRecord
		if err := rows.Scan(&p.RunID, &p.Name, &p.File, &p.Quantity, &p.Status,
			&p.Triangles, &p.VolumeMM3, &p.SizeX, &p.SizeY, &p.SizeZ); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
