package models

// CategoryRecords is the category sampled by the notification sample tool.
const CategoryRecords = "records"

// Notification is a row of the `notifications` table.
// UserID references users.id but the store does not enforce it.
type Notification struct {
	ID        int64  `db:"id" json:"id"`
	UserID    int64  `db:"user_id" json:"user_id"`
	Category  string `db:"category" json:"category"`
	Title     string `db:"title" json:"title"`
	Content   string `db:"content" json:"content"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
