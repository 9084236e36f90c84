package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bloghive/bloglist-api/internal/metrics"
	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// BlogService implements the blog entry use cases.
type BlogService struct {
	blogs  ports.BlogRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewBlogService(blogs ports.BlogRepository, users ports.UserRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{blogs: blogs, users: users, logger: logger}
}

// List returns every blog with its owner expanded to {id, username, name}.
// The join is done in memory; the collections are small and the
// repositories stay free of aggregation concerns.
func (s *BlogService) List(ctx context.Context) ([]domain.BlogWithOwner, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	owners := make(map[string]domain.BlogOwner, len(users))
	for _, u := range users {
		owners[u.ID] = domain.BlogOwner{ID: u.ID, Username: u.Username, Name: u.Name}
	}

	out := make([]domain.BlogWithOwner, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, domain.BlogWithOwner{Blog: *b, User: owners[b.UserID]})
	}
	return out, nil
}

// Create persists a new blog owned by owner and appends the generated id
// to the owner's blog list. Likes defaults to 0 when absent.
func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput, owner *domain.User) (*domain.Blog, error) {
	likes := 0
	if input.Likes != nil {
		likes = *input.Likes
	}

	blog := &domain.Blog{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  likes,
		UserID: owner.ID,
	}

	created, err := s.blogs.Insert(ctx, blog)
	if err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create blog")
		return nil, err
	}

	if err := s.users.AppendBlog(ctx, owner.ID, created.ID); err != nil {
		s.logger.Error().Err(err).Str("blog_id", created.ID).Str("user_id", owner.ID).Msg("failed to append blog to owner")
		return nil, err
	}

	metrics.BlogsCreatedTotal.Inc()
	s.logger.Info().Str("blog_id", created.ID).Str("user_id", owner.ID).Msg("blog created")
	return created, nil
}

// UpdateLikes sets the likes counter on an existing blog. This path
// carries no authentication or ownership check, mirroring create/delete
// asymmetrically on purpose.
func (s *BlogService) UpdateLikes(ctx context.Context, id string, likes int) (*domain.Blog, error) {
	updated, err := s.blogs.UpdateLikes(ctx, id, likes)
	if err != nil {
		return nil, err
	}
	metrics.LikeUpdatesTotal.Inc()
	return updated, nil
}

// Delete removes a blog after checking that subjectID matches its owner.
func (s *BlogService) Delete(ctx context.Context, id string, subjectID string) error {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.UserID != subjectID {
		return domain.ErrNotAuthorized
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}

	metrics.BlogsDeletedTotal.Inc()
	s.logger.Info().Str("blog_id", id).Str("user_id", subjectID).Msg("blog deleted")
	return nil
}
