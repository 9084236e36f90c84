package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog entries.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blogs — no auth required.
//
// @Summary      List all blogs with their owner expanded
// @Tags         blogs
// @Produce      json
// @Success      200  {array}  domain.BlogWithOwner
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, blogs)
}

// Create handles POST /api/blogs. Input validation runs before the token
// check, so a payload missing title or url fails 400 even without a token.
//
// @Summary      Create a blog entry
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog entry"
// @Success      201   {object}  domain.Blog
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if tokenFrom(c) == "" {
		return domain.ErrMissingToken
	}
	user := userFrom(c)
	if user == nil {
		return domain.ErrUserNotFound
	}

	blog, err := h.service.Create(c.Request().Context(), ports.CreateBlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}, user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, blog)
}

// UpdateLikes handles PUT /api/blogs/:id. This path deliberately enforces
// no token or ownership check; any caller with a valid entry id may set
// the likes counter.
//
// @Summary      Update a blog's likes counter
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "New likes value"
// @Success      200   {object}  domain.Blog
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) UpdateLikes(c echo.Context) error {
	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blog, err := h.service.UpdateLikes(c.Request().Context(), c.Param("id"), *req.Likes)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, blog)
}

// Delete handles DELETE /api/blogs/:id — only the owner may delete.
//
// @Summary      Delete a blog entry
// @Tags         blogs
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog id"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if tokenFrom(c) == "" {
		return domain.ErrMissingToken
	}
	claims := claimsFrom(c)
	if claims == nil {
		return domain.ErrTokenInvalid
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), claims.SubjectID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
