package repository

import (
	"context"
	"fmt"
	"testing"

	"storeInspect/internal/testutil"
	"storeInspect/models"
)

func TestUserRepository_ListRecentAndAll(t *testing.T) {
	d := testutil.OpenFixtureDB(t, "userrepo")
	repo := NewUserRepository(d)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		testutil.SeedUser(t, d, models.User{
			Username:  testutil.Ptr(fmt.Sprintf("user%d", i)),
			Nickname:  testutil.Ptr(fmt.Sprintf("nick%d", i)),
			CreatedAt: fmt.Sprintf("2024-01-0%d 10:00:00", i),
		})
	}
	// NULL optional columns
	testutil.SeedUser(t, d, models.User{CreatedAt: "2024-01-08 10:00:00"})

	recent, err := repo.ListRecent(ctx, 5)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent users, got %d", len(recent))
	}
	for i, u := range recent {
		if want := int64(8 - i); u.ID != want {
			t.Fatalf("recent[%d].ID = %d, want %d", i, u.ID, want)
		}
	}
	if recent[0].Username != nil || recent[0].Nickname != nil {
		t.Fatalf("expected NULL username/nickname to scan as nil: %+v", recent[0])
	}
	if recent[1].Avatar != nil {
		t.Fatalf("avatar is not selected by ListRecent: %+v", recent[1])
	}

	// Non-positive limit falls back to the default.
	if def, err := repo.ListRecent(ctx, 0); err != nil || len(def) != DefaultLimit {
		t.Fatalf("default limit: %v len=%d", err, len(def))
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("expected 8 users, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("ListAll not ascending at %d: %d >= %d", i, all[i-1].ID, all[i].ID)
		}
	}
	if all[0].Username == nil || *all[0].Username != "user1" || all[0].CreatedAt != "2024-01-01 10:00:00" {
		t.Fatalf("unexpected first user: %+v", all[0])
	}
}

func TestUserRepository_MissingTable(t *testing.T) {
	d := testutil.OpenFixtureDB(t, "userrepo_missing")
	if _, err := d.Exec(`DROP TABLE users`); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := NewUserRepository(d).ListAll(context.Background()); err == nil {
		t.Fatalf("expected error for missing users table")
	}
}
