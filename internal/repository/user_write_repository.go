package repository

import (
	"database/sql"
	"fmt"

	"github.com/crowsnest/user-directory/internal/models"
	"github.com/lib/pq"
)

// UserWriteRepository handles all state-mutating operations for users.
// It operates exclusively against the PostgreSQL write store (source of truth).
type UserWriteRepository struct {
	db *sql.DB
}

func NewUserWriteRepository(db *sql.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// EnsureSchema creates the users relation if it does not exist yet. The email
// uniqueness constraint lives here; integrity is enforced by storage, not by
// application checks.
func (r *UserWriteRepository) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to ensure users schema: %w", err)
	}
	return nil
}

// Create inserts a new user and fills in the storage-assigned ID.
// Any integrity violation (duplicate email included) comes back as the single
// "user already exists" error; which constraint fired is deliberately not
// surfaced.
func (r *UserWriteRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query,
		user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Class() == "23" {
			return fmt.Errorf("user already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update overwrites name and email on the row matching user.ID. A missing row
// is not an error: the statement simply affects zero rows and the caller
// reports success, matching the service's public contract. The returned bool
// tells the caller whether a row was actually touched.
func (r *UserWriteRepository) Update(user *models.User) (bool, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.db.Exec(query, user.ID, user.Name, user.Email, user.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Class() == "23" {
			return false, fmt.Errorf("user already exists")
		}
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows > 0, nil
}

// Delete removes the row matching id, if any. Deleting an absent id succeeds;
// the returned bool reports whether a row existed.
func (r *UserWriteRepository) Delete(id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return rows > 0, nil
}

// GetByEmail fetches the full write model (including PasswordHash) for
// credential verification. Exactly zero or one row can match: email is unique.
func (r *UserWriteRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var user models.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
