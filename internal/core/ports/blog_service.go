package ports

import (
	"context"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

// CreateBlogInput carries the data needed to create a blog entry.
// Likes is a pointer so that an absent value can default to zero.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// BlogService defines use-case operations for blog entries.
type BlogService interface {
	// List returns all blogs with their owner expanded.
	List(ctx context.Context) ([]domain.BlogWithOwner, error)
	// Create persists a new blog owned by owner and appends its id to the
	// owner's blog list.
	Create(ctx context.Context, input CreateBlogInput, owner *domain.User) (*domain.Blog, error)
	// UpdateLikes sets the likes counter on an existing blog. No
	// authentication or ownership check is applied on this path.
	UpdateLikes(ctx context.Context, id string, likes int) (*domain.Blog, error)
	// Delete removes a blog after verifying that subjectID matches the
	// blog's owner reference.
	Delete(ctx context.Context, id string, subjectID string) error
}
