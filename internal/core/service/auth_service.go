package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// AuthService implements token issuing, token verification, and login.
// The signing secret is injected once at construction and never mutated.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// IssueToken signs an HS256 token carrying the user's id and username.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"id":       user.ID,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// Verify parses and validates a raw bearer token. Expired tokens map to
// domain.ErrTokenExpired; every other failure, including a verified token
// with no subject claim, maps to domain.ErrTokenInvalid.
func (s *AuthService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	subject, _ := claims["id"].(string)
	if subject == "" {
		return nil, domain.ErrTokenInvalid
	}
	username, _ := claims["username"].(string)

	out := &ports.TokenClaims{SubjectID: subject, Username: username}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Login authenticates a username/password pair and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
