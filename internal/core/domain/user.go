package domain

import "errors"

var ErrUserNotFound = errors.New("User not found")
var ErrUsernameTaken = errors.New("Username already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")

// User models a registered account. BlogIDs is the ordered list of blog
// entries the user owns; it is the inverse of Blog.UserID.
type User struct {
	ID           string   `json:"id"`
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	BlogIDs      []string `json:"blogs"`
}
