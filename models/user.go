package models

// User is a row of the `users` table.
// Optional text columns are pointers; nil means SQL NULL.
type User struct {
	ID        int64   `db:"id" json:"id"`
	Username  *string `db:"username" json:"username,omitempty"`
	Nickname  *string `db:"nickname" json:"nickname,omitempty"`
	Avatar    *string `db:"avatar" json:"avatar,omitempty"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}
