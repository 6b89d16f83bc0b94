package main

import (
	"context"
	"log"

	"infohub/internal/auth"
	"infohub/internal/cache"
	"infohub/internal/config"
	"infohub/internal/db"
	"infohub/internal/model"
	"infohub/internal/repository"
	"infohub/internal/service"
)

// Seeds a handful of demo users, authors, and articles so the views have
// something to show on a fresh database.
func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Author{},
		&model.Article{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()

	userRepo := repository.NewUserRepository(gormDB)
	authorRepo := repository.NewAuthorRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	authService := service.NewAuthService(userRepo, auth.NewLegacyCodec())
	authorService := service.NewAuthorService(authorRepo)
	articleService := service.NewArticleService(articleRepo, commentRepo, userRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, articleRepo, cacheClient)

	user, err := authService.Register(ctx, "demo", "demo@example.com", "demo-password")
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	log.Printf("seeded user %q", user.Username)

	authors := []struct{ name, email, bio string }{
		{"Ada Lovelace", "ada@example.com", "Writes about computation."},
		{"Grace Hopper", "grace@example.com", "Compilers and languages."},
	}
	for _, a := range authors {
		if _, err := authorService.CreateAuthor(ctx, a.name, a.email, a.bio); err != nil {
			log.Printf("seed author %q: %v", a.name, err)
		}
	}

	userID := user.ID
	articles := []service.CreateArticleInput{
		{Title: "Welcome to InfoHub", Content: "This is the first article.", TagsCSV: "welcome,meta", AuthorID: &userID},
		{Title: "Tagging things", Content: "Tags are a comma-separated list.", TagsCSV: "tags,howto", AuthorID: &userID},
	}
	for _, in := range articles {
		article, err := articleService.CreateArticle(ctx, in)
		if err != nil {
			log.Printf("seed article %q: %v", in.Title, err)
			continue
		}
		if _, err := commentService.CreateComment(ctx, article.ID, "first-reader", "Nice one!"); err != nil {
			log.Printf("seed comment: %v", err)
		}
	}

	log.Println("seed complete")
}
