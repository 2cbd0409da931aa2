// Package models contains the persisted entities of the server.
package models

import (
	"database/sql"
	"time"
)

// User is a registered account. PasswordHash holds the bcrypt hash, never
// the plaintext password. The profile fields are optional and stored as
// NULL when absent.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	PhoneNumber       sql.NullString
	Address           sql.NullString
	AdditionalAddress sql.NullString
	City              sql.NullString
	ZipCode           sql.NullString
	CreatedAt         time.Time
}
