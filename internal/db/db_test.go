package db

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_AppliesSchema(t *testing.T) {
	d, err := Open(DriverCGO, "file:schematest?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 applied versions, got %d", n)
	}
	if _, err := d.Exec(`INSERT INTO users (username) VALUES ('alice')`); err != nil {
		t.Fatalf("insert user: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO notifications (user_id, category, title, content) VALUES (1, 'records', 't', 'c')`); err != nil {
		t.Fatalf("insert notification: %v", err)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.db")
	d, err := Open(DriverCGO, path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	_ = d.Close()
	d, err = Open(DriverCGO, path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil || n != 2 {
		t.Fatalf("reopen must not reapply schema: n=%d err=%v", n, err)
	}
}

func TestOpenReadOnly_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	for _, drv := range Drivers() {
		if _, err := OpenReadOnly(drv, path); !errors.Is(err, ErrStoreNotFound) {
			t.Fatalf("%s: expected ErrStoreNotFound, got %v", drv, err)
		}
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("store file must not be created, stat err=%v", err)
	}
}

func TestOpenReadOnly_RejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ro.db")
	fx, err := Open(DriverCGO, path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	if _, err := fx.Exec(`INSERT INTO users (username) VALUES ('alice')`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_ = fx.Close()

	for _, drv := range Drivers() {
		d, err := OpenReadOnly(drv, path)
		if err != nil {
			t.Fatalf("%s: open read-only: %v", drv, err)
		}
		var name string
		if err := d.QueryRow(`SELECT username FROM users WHERE id = 1`).Scan(&name); err != nil || name != "alice" {
			t.Fatalf("%s: read back: %v %q", drv, err, name)
		}
		if _, err := d.Exec(`INSERT INTO users (username) VALUES ('mallory')`); err == nil {
			t.Fatalf("%s: expected write to fail on read-only store", drv)
		}
		_ = d.Close()
	}
}

func TestOpenReadOnly_EveryConnectionIsQueryOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.db")
	fx, err := Open(DriverCGO, path)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	_ = fx.Close()

	ctx := context.Background()
	for _, drv := range Drivers() {
		d, err := OpenReadOnly(drv, path)
		if err != nil {
			t.Fatalf("%s: open read-only: %v", drv, err)
		}
		// Let the pool hand out fresh connections beyond the first one.
		d.SetMaxOpenConns(2)
		c1, err := d.Conn(ctx)
		if err != nil {
			t.Fatalf("%s: conn 1: %v", drv, err)
		}
		c2, err := d.Conn(ctx)
		if err != nil {
			t.Fatalf("%s: conn 2: %v", drv, err)
		}
		for i, c := range []interface {
			QueryRowContext(context.Context, string, ...any) *sql.Row
			ExecContext(context.Context, string, ...any) (sql.Result, error)
		}{c1, c2} {
			var on int
			if err := c.QueryRowContext(ctx, `PRAGMA query_only`).Scan(&on); err != nil || on != 1 {
				t.Fatalf("%s: conn %d query_only=%d err=%v", drv, i+1, on, err)
			}
			if _, err := c.ExecContext(ctx, `INSERT INTO users (username) VALUES ('mallory')`); err == nil {
				t.Fatalf("%s: conn %d accepted a write", drv, i+1)
			}
		}
		_ = c1.Close()
		_ = c2.Close()
		_ = d.Close()
	}
}

func TestReadOnlyDSN(t *testing.T) {
	cases := []struct{ driver, path, want string }{
		{DriverCGO, "app.db", "app.db?_query_only=true&_busy_timeout=5000"},
		{DriverCGO, "file:x?mode=memory&cache=shared", "file:x?mode=memory&cache=shared&_query_only=true&_busy_timeout=5000"},
		{DriverPure, "app.db", "app.db?_pragma=query_only(1)&_pragma=busy_timeout(5000)"},
	}
	for _, c := range cases {
		got, err := readOnlyDSN(c.driver, c.path)
		if err != nil || got != c.want {
			t.Fatalf("readOnlyDSN(%s, %s) = %q, %v; want %q", c.driver, c.path, got, err, c.want)
		}
	}
	if _, err := readOnlyDSN("postgres", "app.db"); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
