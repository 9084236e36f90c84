package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghive/bloglist-api/internal/core/domain"
)

func translate(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"malformed id", domain.ErrMalformedID, http.StatusBadRequest, "malformatted id"},
		{"invalid token", domain.ErrTokenInvalid, http.StatusBadRequest, "Token invalid"},
		{"expired token", domain.ErrTokenExpired, http.StatusUnauthorized, "token expired"},
		{"missing token", domain.ErrMissingToken, http.StatusUnauthorized, "Token missing"},
		{"not authorized", domain.ErrNotAuthorized, http.StatusUnauthorized, "User not authorized to delete the blog"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"blog not found", domain.ErrBlogNotFound, http.StatusNotFound, "Blog not found"},
		{"duplicate username", domain.ErrUsernameTaken, http.StatusBadRequest, "Username already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := translate(t, tt.err)
			if code != tt.wantCode {
				t.Fatalf("code = %d, want %d", code, tt.wantCode)
			}
			if msg != tt.wantMsg {
				t.Fatalf("msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestErrorHandler_WrappedInvalidTokenKeepsMessage(t *testing.T) {
	err := fmt.Errorf("%w: signature is invalid", domain.ErrTokenInvalid)
	code, msg := translate(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", code)
	}
	if msg != "Token invalid: signature is invalid" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := translate(t, echo.NewHTTPError(http.StatusBadRequest, "title is required"))
	if code != http.StatusBadRequest || msg != "title is required" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_RouterNotFoundBecomesUnknownEndpoint(t *testing.T) {
	code, msg := translate(t, echo.NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound)))
	if code != http.StatusNotFound || msg != "unknown endpoint" {
		t.Fatalf("got %d %q", code, msg)
	}
}

func TestErrorHandler_UnclassifiedBecomes500(t *testing.T) {
	code, msg := translate(t, fmt.Errorf("mongo: socket closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("msg = %q", msg)
	}
}
