package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"infohub/internal/errors"
	"infohub/internal/model"
	"infohub/internal/service"
)

// AuthHandler handles registration, login, and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration form submission.
type RegisterRequest struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// TokenRequest represents the password-grant login form fields.
type TokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse represents a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ShowRegisterForm godoc
// @Summary Display the registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "registration form"
// @Router /register [get]
func (h *AuthHandler) ShowRegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{"Title": "Register"})
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {string} string "success view"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.Render(http.StatusOK, "register_success.html", echo.Map{
		"Title":    "Registration successful",
		"Username": user.Username,
	})
}

// ShowLoginForm godoc
// @Summary Display the login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "login form"
// @Router /login [get]
func (h *AuthHandler) ShowLoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{"Title": "Login"})
}

// Token godoc
// @Summary Log in and obtain a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Profile godoc
// @Summary Display the authenticated user's profile
// @Tags auth
// @Produce html
// @Security BearerAuth
// @Success 200 {string} string "profile view"
// @Failure 401 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := c.Get("user").(*model.User)
	if !ok {
		he := errors.MapErrorToHTTP(errors.ErrUnauthorized)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"Title": "Profile",
		"User":  user,
	})
}
