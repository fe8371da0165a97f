package models

import (
	"database/sql"
	"time"
)

// ExchangeOperation is the database representation of a user's exchange operation.
// RateID is nullable: deleting the referenced rate sets it to NULL instead of
// cascading into the operation row.
type ExchangeOperation struct {
	OperationID string         `db:"operation_id"`
	RateID      sql.NullString `db:"rate_id"`
	Count       int64          `db:"count"`
	UserID      string         `db:"user_id"`
	CreatedAt   time.Time      `db:"created_at"`
}
