// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists a record of conversion runs in a SQLite
// database, so a project can see which meshes were converted, when, and
// how large they were.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/meshconv/pkg/types"
)

// Record is one catalog entry describing a completed conversion.
type Record struct {
	ID          int64
	SourcePath  string
	OutputPath  string
	Format      types.OutputFormat
	Vertices    int
	Triangles   int
	ConvertedAt time.Time
}

// Store manages the conversion catalog database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at dbPath, creating the
// schema and any missing parent directories.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		format TEXT NOT NULL,
		vertex_count INTEGER NOT NULL,
		triangle_count INTEGER NOT NULL,
		converted_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Add inserts a conversion record and returns its assigned ID.
func (s *Store) Add(ctx context.Context, rec Record) (int64, error) {
	if rec.ConvertedAt.IsZero() {
		rec.ConvertedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source_path, output_path, format, vertex_count, triangle_count, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SourcePath, rec.OutputPath, string(rec.Format),
		rec.Vertices, rec.Triangles, rec.ConvertedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("inserting conversion record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// List returns the most recent conversion records, newest first. A limit
// of zero or less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	q := `SELECT id, source_path, output_path, format, vertex_count, triangle_count, converted_at
	      FROM conversions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec    Record
			format string
			ts     string
		)
		if err := rows.Scan(&rec.ID, &rec.SourcePath, &rec.OutputPath, &format,
			&rec.Vertices, &rec.Triangles, &ts); err != nil {
			return nil, fmt.Errorf("scanning conversion row: %w", err)
		}
		rec.Format = types.OutputFormat(format)
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing converted_at %q: %w", ts, err)
		}
		rec.ConvertedAt = t
		records = append(records, rec)
	}
	return records, rows.Err()
}
