package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"infohub/internal/errors"
	"infohub/internal/service"
)

// AuthorHandler handles author endpoints.
type AuthorHandler struct {
	authorService service.AuthorService
}

// NewAuthorHandler creates a new author handler.
func NewAuthorHandler(authorService service.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// CreateAuthorRequest represents an author form submission.
type CreateAuthorRequest struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Bio   string `form:"bio"`
}

// ShowAddAuthorForm godoc
// @Summary Display the add-author form
// @Tags authors
// @Produce html
// @Success 200 {string} string "author form"
// @Router /add_author [get]
func (h *AuthorHandler) ShowAddAuthorForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_author.html", echo.Map{"Title": "Add author"})
}

// CreateAuthor godoc
// @Summary Create an author
// @Tags authors
// @Accept x-www-form-urlencoded
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param bio formData string false "Bio"
// @Success 303 {string} string "redirect to /authors"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /authors [post]
func (h *AuthorHandler) CreateAuthor(c echo.Context) error {
	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authorService.CreateAuthor(c.Request().Context(), req.Name, req.Email, req.Bio); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.Redirect(http.StatusSeeOther, "/authors")
}

// ListAuthors godoc
// @Summary List all authors
// @Tags authors
// @Produce html
// @Success 200 {string} string "author list view"
// @Router /authors [get]
func (h *AuthorHandler) ListAuthors(c echo.Context) error {
	authors, err := h.authorService.ListAuthors(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.Render(http.StatusOK, "authors.html", echo.Map{
		"Title":   "Authors",
		"Authors": authors,
	})
}
