package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "infohub/internal/errors"
	"infohub/internal/model"
)

func TestCommentService_CreateComment(t *testing.T) {
	t.Run("comment on existing article", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockArticles := new(MockArticleRepository)
		mockArticles.On("FindByID", mock.Anything, uint(5)).Return(&model.Article{ID: 5}, nil)
		mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

		service := NewCommentService(mockComments, mockArticles, nil)
		comment, err := service.CreateComment(context.Background(), 5, "bob", "great read")

		assert.NoError(t, err)
		assert.Equal(t, uint(5), comment.ArticleID)
		assert.Equal(t, "bob", comment.AuthorName)
		assert.Equal(t, "great read", comment.Content)
		mockArticles.AssertExpectations(t)
		mockComments.AssertExpectations(t)
	})

	t.Run("comment on missing article is rejected, no orphan row", func(t *testing.T) {
		mockComments := new(MockCommentRepository)
		mockArticles := new(MockArticleRepository)
		mockArticles.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		service := NewCommentService(mockComments, mockArticles, nil)
		comment, err := service.CreateComment(context.Background(), 404, "bob", "into the void")

		assert.Nil(t, comment)
		assert.Equal(t, apperrors.ErrArticleNotFound, err)
		mockArticles.AssertExpectations(t)
		mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
