package query

import (
	"fmt"

	"github.com/crowsnest/user-directory/internal/cqrs"
	"github.com/crowsnest/user-directory/internal/models"
	"github.com/crowsnest/user-directory/internal/utils"
)

// CredentialReader looks up the write model (with password hash) by email.
type CredentialReader interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthQueryService verifies credentials. There's no CommandService for auth
// because login doesn't mutate application state.
type AuthQueryService struct {
	userRepo CredentialReader
}

func NewAuthQueryService(userRepo CredentialReader) *AuthQueryService {
	return &AuthQueryService{userRepo: userRepo}
}

// Login returns the authenticated user's ID. An unknown email and a wrong
// password produce the identical error so callers cannot probe for account
// existence.
func (s *AuthQueryService) Login(cmd cqrs.LoginCommand) (int64, error) {
	user, err := s.userRepo.GetByEmail(cmd.Email)
	if err != nil {
		return 0, fmt.Errorf("invalid credentials")
	}
	if !utils.CheckPassword(cmd.Password, user.PasswordHash) {
		return 0, fmt.Errorf("invalid credentials")
	}
	return user.ID, nil
}
