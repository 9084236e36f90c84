package ports

import (
	"context"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Insert persists a new user. Returns domain.ErrUsernameTaken when the
	// username is already registered.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// AppendBlog adds a blog id to the user's owned-blog list.
	AppendBlog(ctx context.Context, userID, blogID string) error
}

// UserFinder is the read-only lookup the identity resolver needs. The
// production resolver wraps the mongo repository with a redis cache.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
