package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/crowsnest/user-directory/internal/models"
	directoryredis "github.com/crowsnest/user-directory/internal/redis"
	goredis "github.com/redis/go-redis/v9"
)

const userViewKeyPrefix = "user:view:"

// UserReadRepository handles all read operations for users.
// Single-user lookups go through Redis first, falling back to PostgreSQL on a
// miss. List and search always hit PostgreSQL: they are whole-table scans and
// caching them would only go stale.
type UserReadRepository struct {
	db    *sql.DB
	cache *directoryredis.ViewCache[models.UserView]
}

func NewUserReadRepository(db *sql.DB, redisClient *goredis.Client) *UserReadRepository {
	return &UserReadRepository{
		db:    db,
		cache: directoryredis.NewViewCache[models.UserView](redisClient, 0),
	}
}

// GetByID returns a UserView from Redis first, then PostgreSQL.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserView, error) {
	cacheKey := userViewKey(id)

	if view, ok := r.cache.Get(ctx, cacheKey); ok {
		return view, nil
	}

	// Fallback: PostgreSQL
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var view models.UserView
	err := r.db.QueryRow(query, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.CreatedAt, &view.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Warm the cache
	r.CacheUserView(ctx, &view)
	return &view, nil
}

// List returns every user ordered by id, the natural order of a serial key.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserView, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		ORDER BY id
	`
	return r.queryViews(ctx, query)
}

// SearchByName returns every user whose name contains name as a substring,
// anchored on neither side. ILIKE keeps the match case-insensitive, so "an"
// finds both "Anna" and "Diana".
func (r *UserReadRepository) SearchByName(ctx context.Context, name string) ([]models.UserView, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return r.queryViews(ctx, query, name)
}

func (r *UserReadRepository) queryViews(ctx context.Context, query string, args ...any) ([]models.UserView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	views := make([]models.UserView, 0)
	for rows.Next() {
		var view models.UserView
		if err := rows.Scan(&view.ID, &view.Name, &view.Email, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return views, nil
}

// CacheUserView stores or refreshes the Redis read model for a user.
// Called by the command service after create and by GetByID on a miss.
func (r *UserReadRepository) CacheUserView(ctx context.Context, view *models.UserView) {
	r.cache.Set(ctx, userViewKey(view.ID), view)
}

// InvalidateUserView removes the Redis read model entry for a mutated or
// deleted user.
func (r *UserReadRepository) InvalidateUserView(ctx context.Context, userID int64) {
	r.cache.Delete(ctx, userViewKey(userID))
}

func userViewKey(id int64) string {
	return userViewKeyPrefix + strconv.FormatInt(id, 10)
}
