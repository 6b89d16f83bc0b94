package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"infohub/internal/cache"
	apperrors "infohub/internal/errors"
	"infohub/internal/model"
	"infohub/internal/repository"
)

// CommentService exposes comment operations.
type CommentService interface {
	CreateComment(ctx context.Context, articleID uint, authorName, content string) (*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	cache       *cache.Client
}

// NewCommentService builds a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository, cache *cache.Client) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		cache:       cache,
	}
}

// CreateComment inserts a comment after verifying the article exists, so no
// orphaned rows are written for unknown article IDs.
func (s *commentService) CreateComment(ctx context.Context, articleID uint, authorName, content string) (*model.Comment, error) {
	if _, err := s.articleRepo.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}

	comment := &model.Comment{
		ArticleID:  articleID,
		AuthorName: authorName,
		Content:    content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	_ = s.cache.Delete(ctx, articleCacheKey(articleID))
	return comment, nil
}
