// Package models contains the persistent record types shared by
// repositories and services.
package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and is only
// ever compared through bcrypt; the plaintext password is never stored.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	Email        string
	CreatedAt    time.Time
}
