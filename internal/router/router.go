package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"infohub/internal/config"
	"infohub/internal/errors"
	"infohub/internal/handler"
	"infohub/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	authorHandler *handler.AuthorHandler,
	articleHandler *handler.ArticleHandler,
	authService service.AuthService,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "index.html", echo.Map{"Title": "InfoHub"})
	})

	// Auth
	e.GET("/register", authHandler.ShowRegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.ShowLoginForm)
	e.POST("/token", authHandler.Token)

	// Authors
	e.GET("/add_author", authorHandler.ShowAddAuthorForm)
	e.POST("/authors", authorHandler.CreateAuthor)
	e.GET("/authors", authorHandler.ListAuthors)

	// Articles and comments
	e.GET("/add_article", articleHandler.ShowAddArticleForm)
	e.POST("/articles", articleHandler.CreateArticle)
	e.GET("/articles", articleHandler.ListArticles)
	e.GET("/articles/:id", articleHandler.ReadArticle)
	e.POST("/articles/:id/comment", articleHandler.CreateComment)

	// Profile requires a resolvable bearer token. In jwt mode the signature
	// and expiry are checked by echo-jwt first; resolveBearerUser then loads
	// the user record either way.
	var profileMW []echo.MiddlewareFunc
	if cfg.AuthMode == config.AuthModeJWT {
		profileMW = append(profileMW, echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			ContextKey: "jwt_token",
		}))
	}
	profileMW = append(profileMW, resolveBearerUser(authService))
	e.GET("/profile", authHandler.Profile, profileMW...)
}

// resolveBearerUser extracts the Authorization bearer token, resolves it to
// a user, and stores the record under the "user" context key.
func resolveBearerUser(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				he := errors.MapErrorToHTTP(errors.ErrUnauthorized)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}

			user, err := authService.ResolveToken(c.Request().Context(), strings.TrimPrefix(header, prefix))
			if err != nil {
				he := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
