package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// UserService implements account registration and listing.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register hashes the password and persists a new account. The repository
// reports domain.ErrUsernameTaken when the username is already in use.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hash),
		BlogIDs:      []string{},
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}
