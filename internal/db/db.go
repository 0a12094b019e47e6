package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverCGO is the mattn/go-sqlite3 driver name.
	DriverCGO = "sqlite3"
	// DriverPure is the modernc.org/sqlite driver name, usable without CGO.
	DriverPure = "sqlite"

	defaultPath = "app.db"
)

// ErrStoreNotFound is returned by OpenReadOnly when the store file does not exist.
var ErrStoreNotFound = errors.New("store file not found")

// Drivers lists the accepted driver names.
func Drivers() []string {
	return []string{DriverCGO, DriverPure}
}

// OpenReadOnly opens an existing store for inspection. The file is never created
// and every connection the pool opens runs with query_only set through the DSN,
// so any write statement fails.
// A path starting with "file:" is used as a SQLite URI; its own parameters are kept.
func OpenReadOnly(driver, path string) (*sql.DB, error) {
	if driver == "" {
		driver = DriverCGO
	}
	if path == "" {
		path = defaultPath
	}
	if !strings.HasPrefix(path, "file:") {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, path)
			}
			return nil, err
		}
	}
	dsn, err := readOnlyDSN(driver, path)
	if err != nil {
		return nil, err
	}
	d, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	d.SetMaxOpenConns(1)
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// readOnlyDSN appends the per-connection pragmas each driver understands.
func readOnlyDSN(driver, path string) (string, error) {
	var params string
	switch driver {
	case DriverCGO:
		params = "_query_only=true&_busy_timeout=5000"
	case DriverPure:
		params = "_pragma=query_only(1)&_pragma=busy_timeout(5000)"
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + params, nil
}

// Open opens (or creates) a fixture store and applies the embedded schema
// (see schema.go). The inspection tools never call Open; it builds stores for tests.
func Open(driver, path string) (*sql.DB, error) {
	if driver == "" {
		driver = DriverCGO
	}
	if path == "" {
		path = defaultPath
	}
	d, err := sql.Open(driver, path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if err := applySchema(d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}
