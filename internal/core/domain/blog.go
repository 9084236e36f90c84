package domain

import "errors"

var ErrBlogNotFound = errors.New("Blog not found")
var ErrMalformedID = errors.New("malformatted id")
var ErrNotAuthorized = errors.New("User not authorized to delete the blog")
var ErrMissingToken = errors.New("Token missing")
var ErrTokenInvalid = errors.New("Token invalid")
var ErrTokenExpired = errors.New("token expired")
var ErrValidation = errors.New("validation failed")

// Blog is the core aggregate: a single blog entry owned by a user.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	// UserID is the owner reference, set at creation and immutable after.
	// In BlogWithOwner the expanded User field shadows this tag.
	UserID string `json:"user,omitempty"`
}

// BlogOwner is the owner view embedded in list responses.
type BlogOwner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// BlogWithOwner pairs a blog with its expanded owner record.
type BlogWithOwner struct {
	Blog
	User BlogOwner `json:"user"`
}
