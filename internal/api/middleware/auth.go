package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/metrics"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// Context keys set by the auth middleware chain.
const (
	ContextKeyToken  = "token"
	ContextKeyClaims = "claims"
	ContextKeyUser   = "user"
)

// TokenExtractor reads the Authorization header and, when it carries the
// case-insensitive "bearer" scheme, stores the raw token on the request
// context. A missing header is not an error here; handlers that require
// a token check for its absence themselves.
func TokenExtractor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					c.Set(ContextKeyToken, parts[1])
				}
			}
			return next(c)
		}
	}
}

// UserExtractor verifies a previously extracted token and resolves its
// subject to a persisted user. With no token present the request passes
// through untouched. A verifier failure fails the whole request with the
// verifier's error. A resolver failure leaves no user attached; handlers
// treat that as a distinct, checkable condition.
func UserExtractor(verifier ports.TokenVerifier, resolver ports.UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, _ := c.Get(ContextKeyToken).(string)
			if raw == "" {
				return next(c)
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired_token"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return err
			}
			c.Set(ContextKeyClaims, claims)

			if user, err := resolver.FindByID(c.Request().Context(), claims.SubjectID); err == nil {
				c.Set(ContextKeyUser, user)
			}

			return next(c)
		}
	}
}
