package ports

import (
	"context"
	"time"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	SubjectID string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenVerifier validates a raw bearer token against the signing secret.
// Pure function of token and secret; no side effects.
type TokenVerifier interface {
	// Verify returns domain.ErrTokenExpired past expiry and
	// domain.ErrTokenInvalid on any signature, format, or claim problem.
	Verify(token string) (*TokenClaims, error)
}

// AuthService issues and verifies tokens and authenticates credentials.
type AuthService interface {
	TokenVerifier
	IssueToken(user *domain.User) (string, error)
	// Login returns a signed token and the matching user, or
	// domain.ErrInvalidCredentials when the username or password is wrong.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
