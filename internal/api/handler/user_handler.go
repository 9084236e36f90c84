package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghive/bloglist-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"`
	Password string `json:"password" validate:"required,min=3"`
}

// List handles GET /api/users. Password hashes never leave the domain
// type, so the response carries id, username, name, and owned blog ids.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Register handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}
