package models

import "time"

// UserDB represents a user record in the database.
// PasswordHash is never serialized into API responses.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key, assigned by storage
	Name         string    `json:"name" db:"name"`             // Display name, not unique
	Email        string    `json:"email" db:"email"`           // Unique, used as the token subject
	Nickname     string    `json:"nickname" db:"nickname"`     // Free-form nickname
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, empty for users created without credentials
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
