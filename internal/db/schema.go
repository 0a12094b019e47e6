package db

import (
	"database/sql"
	"embed"
	"fmt"
	stdfs "io/fs"
	"path"
	"regexp"
	"strconv"
)

// Fixture schema scripts are named NNNN_name.up.sql and applied once each, in
// version order, with the version recorded in schema_migrations.
//
//go:embed migrations/*.up.sql
var schemaFS embed.FS

var schemaFileRe = regexp.MustCompile(`^([0-9]{4})_.+\.up\.sql$`)

func applySchema(d *sql.DB) error {
	if _, err := d.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
        version INTEGER PRIMARY KEY,
        applied_at TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
    )`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	// ReadDir returns entries sorted by name, and the zero-padded prefix makes
	// that version order.
	entries, err := stdfs.ReadDir(schemaFS, "migrations")
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}
	for _, de := range entries {
		m := schemaFileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		version, _ := strconv.Atoi(m[1])
		if err := applyScript(d, version, path.Join("migrations", de.Name())); err != nil {
			return fmt.Errorf("schema %s: %w", de.Name(), err)
		}
	}
	return nil
}

func applyScript(d *sql.DB, version int, file string) error {
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, version).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	script, err := schemaFS.ReadFile(file)
	if err != nil {
		return err
	}
	tx, err := d.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.Exec(string(script)); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES(?)`, version); err != nil {
		return err
	}
	return tx.Commit()
}
