package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bloghive/bloglist-api/internal/api/middleware"
	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// Accessors for the values the auth middleware chain attaches to the
// request context. Each returns the zero value when the corresponding
// stage did not run or did not succeed, so handlers can decide per route
// whether a token, verified claims, or a resolved user is mandatory.

func tokenFrom(c echo.Context) string {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	return token
}

func claimsFrom(c echo.Context) *ports.TokenClaims {
	claims, _ := c.Get(middleware.ContextKeyClaims).(*ports.TokenClaims)
	return claims
}

func userFrom(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.User)
	return user
}
