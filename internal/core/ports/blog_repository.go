package ports

import (
	"context"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

// BlogRepository defines persistence operations for blog entries.
type BlogRepository interface {
	// Insert persists a new blog and returns it with its generated id.
	Insert(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	// FindByID retrieves a blog by id. Returns domain.ErrMalformedID when
	// the id is not structurally valid and domain.ErrBlogNotFound when no
	// document matches a well-formed id.
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	FindAll(ctx context.Context) ([]*domain.Blog, error)
	// UpdateLikes sets the likes counter and returns the updated blog.
	// Last write wins; there is no conflict detection.
	UpdateLikes(ctx context.Context, id string, likes int) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
