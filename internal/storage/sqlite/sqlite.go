// Package sqlite provides a durable storage.Publisher backed by a
// pure-Go SQLite driver, so a deployment can persist the two relations
// a parse job publishes without cgo.
package sqlite

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/logtt/logtt/internal/storage"
)

//go:embed migrations/001_initial_schema.up.sql
var migration001SQL string

// Store is a SQLite-backed storage.Publisher.
type Store struct {
	db *sql.DB
}

// Open creates or attaches to a SQLite database at path and runs its
// migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=30000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: setting pragma: %w", err)
		}
	}

	if _, err := db.Exec(migration001SQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) TableExists(name string) bool {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM relations WHERE table_name = ?`, name).Scan(&n)
	return err == nil && n > 0
}

// Publish writes both relations inside a single transaction so a
// failure partway through never leaves one relation visible without
// its counterpart.
func (s *Store) Publish(r storage.Relations, overwrite bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite: begin tx: %w", err)
	}
	defer tx.Rollback()

	if !overwrite {
		for _, name := range []string{r.StructuredTable, r.TemplatesTable} {
			var n int
			if err := tx.QueryRow(`SELECT COUNT(*) FROM relations WHERE table_name = ?`, name).Scan(&n); err != nil {
				return fmt.Errorf("sqlite: checking existing table %s: %w", name, err)
			}
			if n > 0 {
				return storage.ErrOutputConflict
			}
		}
	} else {
		for _, name := range []string{r.StructuredTable, r.TemplatesTable} {
			if _, err := tx.Exec(`DELETE FROM structured_rows WHERE table_name = ?`, name); err != nil {
				return err
			}
			if _, err := tx.Exec(`DELETE FROM template_rows WHERE table_name = ?`, name); err != nil {
				return err
			}
			if _, err := tx.Exec(`DELETE FROM relations WHERE table_name = ?`, name); err != nil {
				return err
			}
		}
	}

	if _, err := tx.Exec(`INSERT INTO relations (table_name, kind, log_file) VALUES (?, 'structured', ?)`,
		r.StructuredTable, r.LogFile); err != nil {
		return fmt.Errorf("sqlite: registering structured table: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO relations (table_name, kind, log_file) VALUES (?, 'templates', ?)`,
		r.TemplatesTable, r.LogFile); err != nil {
		return fmt.Errorf("sqlite: registering templates table: %w", err)
	}

	insertRow, err := tx.Prepare(`INSERT INTO structured_rows (table_name, line_id, header_json, content, event_template, parameters_json) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertRow.Close()

	for _, row := range r.Structured {
		headerJSON, err := json.Marshal(row.Header)
		if err != nil {
			return fmt.Errorf("sqlite: marshaling header: %w", err)
		}
		var paramsJSON []byte
		if row.ParameterList != nil {
			paramsJSON, err = json.Marshal(row.ParameterList)
			if err != nil {
				return fmt.Errorf("sqlite: marshaling parameters: %w", err)
			}
		}
		if _, err := insertRow.Exec(r.StructuredTable, row.LineID, string(headerJSON), row.Content, row.EventTemplate, nullableString(paramsJSON)); err != nil {
			return fmt.Errorf("sqlite: inserting structured row: %w", err)
		}
	}

	insertTemplate, err := tx.Prepare(`INSERT INTO template_rows (table_name, event_template, occurrences) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertTemplate.Close()

	for _, t := range r.Templates {
		if _, err := insertTemplate.Exec(r.TemplatesTable, t.EventTemplate, t.Occurrences); err != nil {
			return fmt.Errorf("sqlite: inserting template row: %w", err)
		}
	}

	return tx.Commit()
}

func nullableString(b []byte) any {
	if b == nil {
		return nil
	}
	return string(b)
}
