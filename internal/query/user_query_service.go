package query

import (
	"context"

	"github.com/crowsnest/user-directory/internal/cqrs"
	"github.com/crowsnest/user-directory/internal/models"
)

// ViewReader is the subset of the read repository the query service uses.
type ViewReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserView, error)
	List(ctx context.Context) ([]models.UserView, error)
	SearchByName(ctx context.Context, name string) ([]models.UserView, error)
}

// UserQueryService reads user views from the Redis cache (with a Postgres
// fallback) for single lookups, and straight from Postgres for scans.
type UserQueryService struct {
	readRepo ViewReader
}

func NewUserQueryService(readRepo ViewReader) *UserQueryService {
	return &UserQueryService{readRepo: readRepo}
}

func (s *UserQueryService) GetUser(q cqrs.GetUserQuery) (*models.UserView, error) {
	return s.readRepo.GetByID(context.Background(), q.UserID)
}

func (s *UserQueryService) ListUsers(q cqrs.ListUsersQuery) ([]models.UserView, error) {
	return s.readRepo.List(context.Background())
}

func (s *UserQueryService) SearchUsers(q cqrs.SearchUsersQuery) ([]models.UserView, error) {
	return s.readRepo.SearchByName(context.Background(), q.Name)
}
