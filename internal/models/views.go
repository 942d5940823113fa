package models

import "time"

// UserView is the read-optimised projection of a user.
// It never exposes PasswordHash and may be extended with derived fields.
type UserView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}
