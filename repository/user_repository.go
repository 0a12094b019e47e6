package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storeInspect/models"
)

// created_at is cast to TEXT in every select: stores that declare it DATETIME
// would otherwise come back from both drivers as time.Time and print reformatted.

// DefaultLimit caps the "most recent" listings when the caller passes a non-positive limit.
const DefaultLimit = 5

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// ListRecent returns the newest users by id, at most limit rows. Avatar is not selected.
func (r *UserRepository) ListRecent(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, username, nickname, CAST(created_at AS TEXT) AS created_at FROM users ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		var username, nickname, created sql.NullString
		if err := rows.Scan(&u.ID, &username, &nickname, &created); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Username = nullableString(username)
		u.Nickname = nullableString(nickname)
		u.CreatedAt = created.String
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent users: %w", err)
	}
	return out, nil
}

// ListAll returns every user ordered by id ascending.
func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, username, nickname, avatar, CAST(created_at AS TEXT) AS created_at FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		var username, nickname, avatar, created sql.NullString
		if err := rows.Scan(&u.ID, &username, &nickname, &avatar, &created); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Username = nullableString(username)
		u.Nickname = nullableString(nickname)
		u.Avatar = nullableString(avatar)
		u.CreatedAt = created.String
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
