package models

import "database/sql"

// User is a journal member.
type User struct {
	ID       int64   `json:"id"`       // Generated primary key
	Username string  `json:"username"` // Unique username
	Email    string  `json:"email"`    // Unique email
	Avatar   *string `json:"avatar"`   // Optional avatar reference, nil when not set
}

// UserDB represents a user row in the database
type UserDB struct {
	ID       int64          `db:"id"`
	Username string         `db:"username"`
	Email    string         `db:"email"`
	Avatar   sql.NullString `db:"avatar"`
}

// Credentials carries the fields supplied on sign-up.
type Credentials struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar,omitempty"`
}
