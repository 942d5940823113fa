package command

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/crowsnest/user-directory/internal/cqrs"
	"github.com/crowsnest/user-directory/internal/events"
	"github.com/crowsnest/user-directory/internal/models"
	"github.com/crowsnest/user-directory/internal/utils"
)

// WriteStore is the subset of the write repository the command service uses.
type WriteStore interface {
	Create(user *models.User) error
	Update(user *models.User) (bool, error)
	Delete(id int64) (bool, error)
}

// ViewStore is the subset of the read repository that keeps the Redis read
// model in step with the write store.
type ViewStore interface {
	CacheUserView(ctx context.Context, view *models.UserView)
	InvalidateUserView(ctx context.Context, userID int64)
}

// EventPublisher emits domain events after successful mutations.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// UserCommandService writes user state to PostgreSQL and keeps the Redis
// read model up to date.
type UserCommandService struct {
	writeRepo WriteStore
	readRepo  ViewStore
	publisher EventPublisher
}

func NewUserCommandService(writeRepo WriteStore, readRepo ViewStore, publisher EventPublisher) *UserCommandService {
	return &UserCommandService{
		writeRepo: writeRepo,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

// CreateUser hashes the plaintext password and inserts the row. Storage
// assigns the ID; a uniqueness violation on email surfaces as the write
// repository's "user already exists" error.
func (s *UserCommandService) CreateUser(cmd cqrs.CreateUserCommand) (*models.User, error) {
	passwordHash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	now := time.Now().UTC()
	user := &models.User{
		Name:         cmd.Name,
		Email:        cmd.Email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.writeRepo.Create(user); err != nil {
		return nil, err
	}

	ctx := context.Background()
	s.readRepo.CacheUserView(ctx, userToView(user))
	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserCreated, events.UserCreatedEvent{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}); err != nil {
		log.Printf("Failed to publish user.created event: %v", err)
	}
	return user, nil
}

// UpdateUser overwrites name and email on the row matching the command's ID.
// An absent row is not an error: the statement affects zero rows and the
// operation still succeeds. The password is never touched here.
func (s *UserCommandService) UpdateUser(cmd cqrs.UpdateUserCommand) error {
	user := &models.User{
		ID:        cmd.UserID,
		Name:      cmd.Name,
		Email:     cmd.Email,
		UpdatedAt: time.Now().UTC(),
	}
	updated, err := s.writeRepo.Update(user)
	if err != nil {
		return err
	}
	if !updated {
		// No such row. The operation still succeeds, but there is nothing to
		// invalidate and no event to emit.
		return nil
	}

	// Drop the cached view rather than rewriting it; the next read warms the
	// cache from Postgres.
	ctx := context.Background()
	s.readRepo.InvalidateUserView(ctx, cmd.UserID)
	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserUpdated, events.UserUpdatedEvent{
		UserID: cmd.UserID,
		Email:  cmd.Email,
		Name:   cmd.Name,
	}); err != nil {
		log.Printf("Failed to publish user.updated event: %v", err)
	}
	return nil
}

// DeleteUser removes the row matching the command's ID. Deleting an absent id
// succeeds, which makes the operation idempotent.
func (s *UserCommandService) DeleteUser(cmd cqrs.DeleteUserCommand) error {
	deleted, err := s.writeRepo.Delete(cmd.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return nil
	}

	ctx := context.Background()
	s.readRepo.InvalidateUserView(ctx, cmd.UserID)
	if err := s.publisher.Publish(ctx, events.UserEventsStream, events.UserDeleted, events.UserDeletedEvent{
		UserID: cmd.UserID,
	}); err != nil {
		log.Printf("Failed to publish user.deleted event: %v", err)
	}
	return nil
}

func userToView(u *models.User) *models.UserView {
	return &models.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
