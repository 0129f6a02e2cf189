package models

import "time"

// User is a server-side account. PasswordHash is an encoded argon2id hash;
// the plaintext password never touches storage.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// RefreshToken is a server-issued opaque token that can be exchanged for a
// fresh token pair until it expires or is revoked.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
