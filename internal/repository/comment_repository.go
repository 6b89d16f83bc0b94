package repository

import (
	"context"

	"gorm.io/gorm"

	"infohub/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByArticle(ctx context.Context, articleID uint) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ListByArticle returns all comments for an article, in storage order.
func (r *commentRepository) ListByArticle(ctx context.Context, articleID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("article_id = ?", articleID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
