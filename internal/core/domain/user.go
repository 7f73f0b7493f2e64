package domain

import "time"

// User models a registered account. Email is the natural key: at most one
// user exists per email value at any time, enforced by a unique index in the
// store. PasswordHash holds a bcrypt digest, never the submitted secret.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
