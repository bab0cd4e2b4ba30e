// SPDX-License-Identifier: MIT
// Package: cognasim/internal/store
//
// store.go — SQLite archive of runs and replicates.

// Package store archives simulation runs and their replicate matrices in a
// SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a run or replicate does not exist.
var ErrNotFound = errors.New("store: not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	model      TEXT NOT NULL,
	languages  INTEGER NOT NULL,
	features   INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	settings   TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS replicates (
	run_id  TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	idx     INTEGER NOT NULL,
	harvest TEXT NOT NULL,
	newick  TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (run_id, idx)
);
`

// Run describes one batch invocation.
type Run struct {
	ID        uuid.UUID
	Name      string
	Model     string
	Languages int
	Features  int
	Seed      uint64
	// Settings is the YAML form of the full run configuration.
	Settings  string
	CreatedAt time.Time
}

// Replicate is one generated matrix in harvest CSV form.
type Replicate struct {
	RunID   uuid.UUID
	Index   int
	Harvest string
	// Newick holds the tree of tree-model replicates, empty otherwise.
	Newick string
}

// Store wraps a SQLite handle. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// a single connection serialises writers from concurrent replicates
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: init %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// CreateRun inserts r, assigning an ID and creation time when unset.
func (s *Store) CreateRun(ctx context.Context, r Run) (Run, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, name, model, languages, features, seed, settings, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Name, r.Model, r.Languages, r.Features, int64(r.Seed), r.Settings,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("store: create run %s: %w", r.ID, err)
	}
	return r, nil
}

// PutReplicate stores or replaces one replicate.
func (s *Store) PutReplicate(ctx context.Context, rep Replicate) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO replicates (run_id, idx, harvest, newick) VALUES (?, ?, ?, ?)`,
		rep.RunID.String(), rep.Index, rep.Harvest, rep.Newick,
	)
	if err != nil {
		return fmt.Errorf("store: put replicate %s/%d: %w", rep.RunID, rep.Index, err)
	}
	return nil
}

// GetRun loads a run by ID.
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, model, languages, features, seed, settings, created_at FROM runs WHERE id = ?`,
		id.String())
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("store: run %s: %w", id, ErrNotFound)
	}
	return r, err
}

// Runs lists all runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, model, languages, features, seed, settings, created_at FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetReplicate loads one replicate.
func (s *Store) GetReplicate(ctx context.Context, runID uuid.UUID, index int) (Replicate, error) {
	rep := Replicate{RunID: runID, Index: index}
	err := s.db.QueryRowContext(ctx,
		`SELECT harvest, newick FROM replicates WHERE run_id = ? AND idx = ?`,
		runID.String(), index,
	).Scan(&rep.Harvest, &rep.Newick)
	if errors.Is(err, sql.ErrNoRows) {
		return Replicate{}, fmt.Errorf("store: replicate %s/%d: %w", runID, index, ErrNotFound)
	}
	if err != nil {
		return Replicate{}, fmt.Errorf("store: replicate %s/%d: %w", runID, index, err)
	}
	return rep, nil
}

// CountReplicates returns how many replicates a run has stored.
func (s *Store) CountReplicates(ctx context.Context, runID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM replicates WHERE run_id = ?`, runID.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("store: count replicates %s: %w", runID, err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		id      string
		seed    int64
		created string
	)
	if err := sc.Scan(&id, &r.Name, &r.Model, &r.Languages, &r.Features, &seed, &r.Settings, &created); err != nil {
		return Run{}, err
	}
	var err error
	if r.ID, err = uuid.Parse(id); err != nil {
		return Run{}, fmt.Errorf("store: run id %q: %w", id, err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Run{}, fmt.Errorf("store: run %s created_at: %w", id, err)
	}
	r.Seed = uint64(seed)
	return r, nil
}
