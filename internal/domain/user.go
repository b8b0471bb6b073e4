package domain

import "time"

// User represents a registered account. PasswordHash and Salt never leave the
// service layer; API responses carry sanitized copies with both fields empty.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Salt         string
	FirstName    string
	LastName     string
	Email        string
	CreatedAt    time.Time
}
