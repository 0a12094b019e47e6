package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storeInspect/models"
)

type NotificationRepository struct {
	db Querier
}

func NewNotificationRepository(db Querier) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListByCategory returns the newest notifications of a category ordered by created_at desc, id desc.
func (r *NotificationRepository) ListByCategory(ctx context.Context, category string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
SELECT n.id, n.user_id, n.category, n.title, n.content, CAST(n.created_at AS TEXT) AS created_at
FROM notifications n
WHERE n.category = ?
ORDER BY n.created_at DESC, n.id DESC
LIMIT ?`, category, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications by category: %w", err)
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		var userID sql.NullInt64
		var title, content, created sql.NullString
		if err := rows.Scan(&n.ID, &userID, &n.Category, &title, &content, &created); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.UserID = userID.Int64
		n.Title = title.String
		n.Content = content.String
		n.CreatedAt = created.String
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications by category: %w", err)
	}
	return out, nil
}

// ListUnmigrated returns notifications whose title equals title exactly and whose
// content does not yet contain marker, ordered by id asc. Rows with NULL content
// have nothing to migrate and are skipped. instr keeps the match case-sensitive
// and free of LIKE wildcards.
// Only id and content are selected; Title is filled from the filter.
func (r *NotificationRepository) ListUnmigrated(ctx context.Context, title, marker string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
SELECT id, content
FROM notifications
WHERE title = ?
  AND content IS NOT NULL
  AND instr(content, ?) = 0
ORDER BY id ASC`, title, marker)
	if err != nil {
		return nil, fmt.Errorf("list unmigrated notifications: %w", err)
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		n := models.Notification{Title: title}
		if err := rows.Scan(&n.ID, &n.Content); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list unmigrated notifications: %w", err)
	}
	return out, nil
}
