package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/bloglist-api/internal/core/domain"
	"github.com/bloghive/bloglist-api/internal/metrics"
	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// LoginHandler exchanges credentials for a bearer token.
type LoginHandler struct {
	auth ports.AuthService
}

func NewLoginHandler(auth ports.AuthService) *LoginHandler {
	return &LoginHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Login handles POST /api/login.
//
// @Summary      Login
// @Tags         login
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/login [post]
func (h *LoginHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}
