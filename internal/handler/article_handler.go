package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"infohub/internal/errors"
	"infohub/internal/service"
)

// ArticleHandler handles article and comment endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
	commentService service.CommentService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService, commentService service.CommentService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		commentService: commentService,
	}
}

// CreateArticleRequest represents an article form submission. AuthorID is
// the optional explicit user to attach the article to; when empty the first
// user row is used.
type CreateArticleRequest struct {
	Title    string `form:"title" validate:"required"`
	Content  string `form:"content" validate:"required"`
	Tags     string `form:"tags"`
	AuthorID string `form:"author_id"`
}

// CreateCommentRequest represents a comment form submission.
type CreateCommentRequest struct {
	AuthorName string `form:"author_name" validate:"required"`
	Content    string `form:"content" validate:"required"`
}

// ShowAddArticleForm godoc
// @Summary Display the add-article form
// @Tags articles
// @Produce html
// @Success 200 {string} string "article form"
// @Router /add_article [get]
func (h *ArticleHandler) ShowAddArticleForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_article.html", echo.Map{"Title": "Add article"})
}

// CreateArticle godoc
// @Summary Create an article
// @Tags articles
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param tags formData string false "Comma-separated tags"
// @Param author_id formData int false "Explicit author user ID"
// @Success 303 {string} string "redirect to /articles"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.CreateArticleInput{
		Title:   req.Title,
		Content: req.Content,
		TagsCSV: req.Tags,
	}
	if req.AuthorID != "" {
		id, err := strconv.ParseUint(req.AuthorID, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid author_id")
		}
		authorID := uint(id)
		in.AuthorID = &authorID
	}

	if _, err := h.articleService.CreateArticle(c.Request().Context(), in); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.Redirect(http.StatusSeeOther, "/articles")
}

// ListArticles godoc
// @Summary List all articles
// @Tags articles
// @Produce html
// @Success 200 {string} string "article list view"
// @Router /articles [get]
func (h *ArticleHandler) ListArticles(c echo.Context) error {
	articles, err := h.articleService.ListArticles(c.Request().Context())
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.Render(http.StatusOK, "articles.html", echo.Map{
		"Title":    "Articles",
		"Articles": articles,
	})
}

// ReadArticle godoc
// @Summary Read an article with its comments
// @Tags articles
// @Produce html
// @Param id path int true "Article ID"
// @Success 200 {string} string "article detail view"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id} [get]
func (h *ArticleHandler) ReadArticle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	detail, err := h.articleService.GetArticle(c.Request().Context(), uint(id))
	if err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.Render(http.StatusOK, "article_detail.html", echo.Map{
		"Title":    detail.Article.Title,
		"Article":  detail.Article,
		"Comments": detail.Comments,
	})
}

// CreateComment godoc
// @Summary Add a comment to an article
// @Tags articles
// @Accept x-www-form-urlencoded
// @Param id path int true "Article ID"
// @Param author_name formData string true "Commenter name"
// @Param content formData string true "Comment text"
// @Success 303 {string} string "redirect to the article"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{id}/comment [post]
func (h *ArticleHandler) CreateComment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.commentService.CreateComment(c.Request().Context(), uint(id), req.AuthorName, req.Content); err != nil {
		he := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/articles/%d", id))
}
