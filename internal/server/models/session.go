package models

import "time"

// Session maps an opaque cookie token to a user identity. Rows are stored in
// Postgres so any server instance can resolve a session.
type Session struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
