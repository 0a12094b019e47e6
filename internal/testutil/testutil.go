package testutil

import (
	"database/sql"
	"testing"

	"storeInspect/internal/db"
	"storeInspect/models"
)

// MemoryDSN returns the shared in-memory SQLite URI for a fixture name.
// Every connection opened with the same DSN sees the same database while one stays open.
func MemoryDSN(name string) string {
	return "file:" + name + "?mode=memory&cache=shared"
}

// OpenFixtureDB opens an in-memory fixture store with the schema applied.
// The store is closed via t.Cleanup.
func OpenFixtureDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	return OpenFixtureDBWithDriver(t, db.DriverCGO, name)
}

// OpenFixtureDBWithDriver is OpenFixtureDB for a specific SQLite driver.
func OpenFixtureDBWithDriver(t *testing.T, driver, name string) *sql.DB {
	t.Helper()
	d, err := db.Open(driver, MemoryDSN(name))
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SeedUser inserts u and returns its id. A zero u.ID lets the store assign one;
// an empty CreatedAt uses the column default.
func SeedUser(t *testing.T, d *sql.DB, u models.User) int64 {
	t.Helper()
	var id any
	if u.ID != 0 {
		id = u.ID
	}
	var created any
	if u.CreatedAt != "" {
		created = u.CreatedAt
	}
	res, err := d.Exec(`INSERT INTO users (id, username, nickname, avatar, created_at)
VALUES (?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))`,
		id, ptrArg(u.Username), ptrArg(u.Nickname), ptrArg(u.Avatar), created)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("seed user id: %v", err)
	}
	return newID
}

// SeedNotification inserts n and returns its id. Content "" is stored as NULL
// only when nullContent is set.
func SeedNotification(t *testing.T, d *sql.DB, n models.Notification, nullContent bool) int64 {
	t.Helper()
	var content any = n.Content
	if nullContent {
		content = nil
	}
	var created any
	if n.CreatedAt != "" {
		created = n.CreatedAt
	}
	res, err := d.Exec(`INSERT INTO notifications (user_id, category, title, content, created_at)
VALUES (?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))`,
		n.UserID, n.Category, n.Title, content, created)
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("seed notification id: %v", err)
	}
	return id
}

// Ptr returns a pointer to v.
func Ptr(v string) *string {
	return &v
}

func ptrArg(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
