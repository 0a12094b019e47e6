package repository

import (
	"context"
	"database/sql"

	"storeInspect/models"
)

// Querier is the read side of *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// UserRepositoryI defines read operations on User rows.
type UserRepositoryI interface {
	ListRecent(ctx context.Context, limit int) ([]models.User, error)
	ListAll(ctx context.Context) ([]models.User, error)
}

// NotificationRepositoryI defines read operations on Notification rows.
type NotificationRepositoryI interface {
	ListByCategory(ctx context.Context, category string, limit int) ([]models.Notification, error)
	ListUnmigrated(ctx context.Context, title, marker string) ([]models.Notification, error)
}

var (
	_ UserRepositoryI         = (*UserRepository)(nil)
	_ NotificationRepositoryI = (*NotificationRepository)(nil)
)
