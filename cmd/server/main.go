package main

import (
	"log"
	"net/http"

	_ "infohub/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"infohub/internal/auth"
	"infohub/internal/cache"
	"infohub/internal/config"
	"infohub/internal/db"
	"infohub/internal/handler"
	"infohub/internal/model"
	"infohub/internal/repository"
	"infohub/internal/router"
	"infohub/internal/service"
	"infohub/internal/web"
)

// @title InfoHub API
// @version 1.0
// @description API for storing and managing articles, authors, and comments.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Renderer = web.NewRenderer()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Author{},
		&model.Article{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	authorRepo := repository.NewAuthorRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Token codec depends on the configured auth mode. Legacy keeps the
	// original token-as-username behavior; jwt issues signed tokens.
	var codec auth.TokenCodec
	if cfg.AuthMode == config.AuthModeJWT {
		codec = auth.NewJWTService(cfg.JWTSecret)
	} else {
		codec = auth.NewLegacyCodec()
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, codec)
	authorService := service.NewAuthorService(authorRepo)
	articleService := service.NewArticleService(articleRepo, commentRepo, userRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, articleRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	authorHandler := handler.NewAuthorHandler(authorService)
	articleHandler := handler.NewArticleHandler(articleService, commentService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		authorHandler,
		articleHandler,
		authService,
	)

	log.Printf("auth mode: %s", cfg.AuthMode)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
