package models

import "time"

// User is the write model. Storage assigns ID on insert; the email column
// carries a uniqueness constraint. PasswordHash holds a bcrypt hash, never
// plaintext.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdTimestamp"`
	UpdatedAt    time.Time `json:"updatedTimestamp"`
}
