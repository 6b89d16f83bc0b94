package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"infohub/internal/cache"
	apperrors "infohub/internal/errors"
	"infohub/internal/model"
	"infohub/internal/repository"
)

const articleCacheTTL = 5 * time.Minute

// CreateArticleInput carries the fields of an article submission. AuthorID
// selects the user the article is attached to; when nil the first user row
// in storage order is used, which reproduces the original implicit
// behavior and is non-deterministic once users can be deleted or reordered.
// Callers that care should always pass AuthorID.
type CreateArticleInput struct {
	Title    string
	Content  string
	TagsCSV  string
	AuthorID *uint
}

// ArticleDetail is an article together with its comments.
type ArticleDetail struct {
	Article  model.Article   `json:"article"`
	Comments []model.Comment `json:"comments"`
}

// ArticleService exposes article operations.
type ArticleService interface {
	CreateArticle(ctx context.Context, in CreateArticleInput) (*model.Article, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id uint) (*ArticleDetail, error)
}

type articleService struct {
	articleRepo repository.ArticleRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	cache       *cache.Client
}

// NewArticleService builds an ArticleService.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		cache:       cache,
	}
}

func articleCacheKey(id uint) string {
	return fmt.Sprintf("article:%d", id)
}

// splitTags splits a comma-separated tag string. The empty string yields an
// empty list; otherwise plain comma splitting applies, so "a,,b" keeps its
// empty middle entry and a trailing comma produces a trailing empty tag.
func splitTags(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, ",")
}

func (s *articleService) CreateArticle(ctx context.Context, in CreateArticleInput) (*model.Article, error) {
	var author *model.User
	var err error
	if in.AuthorID != nil {
		author, err = s.userRepo.FindByID(ctx, *in.AuthorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, fmt.Errorf("find author: %w", err)
		}
	} else {
		author, err = s.userRepo.FindFirst(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAuthorNotFound
			}
			return nil, fmt.Errorf("find author: %w", err)
		}
	}

	article := &model.Article{
		Title:       in.Title,
		Content:     in.Content,
		Tags:        splitTags(in.TagsCSV),
		PublishedAt: time.Now(),
		AuthorID:    author.ID,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.articleRepo.List(ctx)
}

// GetArticle returns the article and all its comments, serving from the
// cache when a fresh copy exists.
func (s *articleService) GetArticle(ctx context.Context, id uint) (*ArticleDetail, error) {
	if data, _ := s.cache.Get(ctx, articleCacheKey(id)); data != nil {
		var cached ArticleDetail
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	comments, err := s.commentRepo.ListByArticle(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	detail := &ArticleDetail{Article: *article, Comments: comments}
	if payload, err := json.Marshal(detail); err == nil {
		_ = s.cache.Set(ctx, articleCacheKey(id), payload, articleCacheTTL)
	}
	return detail, nil
}
