package ports

import (
	"context"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

// RegisterInput carries the data needed to register a user account.
type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
