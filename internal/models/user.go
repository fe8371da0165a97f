package models

import "time"

// User is the database representation of a registered account.
type User struct {
	UserID        string    `db:"user_id"`
	Username      string    `db:"username"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
