package models

import "time"

// User represents a registered exercise tracker user.
type User struct {
	ID        string    `json:"_id" db:"id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"-" db:"-"`
}
