package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "infohub/internal/errors"
	"infohub/internal/model"
	"infohub/internal/repository"
)

// AuthorService exposes author operations.
type AuthorService interface {
	CreateAuthor(ctx context.Context, name, email, bio string) (*model.Author, error)
	ListAuthors(ctx context.Context) ([]model.Author, error)
}

type authorService struct {
	repo repository.AuthorRepository
}

// NewAuthorService builds an AuthorService.
func NewAuthorService(repo repository.AuthorRepository) AuthorService {
	return &authorService{repo: repo}
}

func (s *authorService) CreateAuthor(ctx context.Context, name, email, bio string) (*model.Author, error) {
	author := &model.Author{
		Name:  name,
		Email: email,
		Bio:   bio,
	}
	if err := s.repo.Create(ctx, author); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create author: %w", err)
	}
	return author, nil
}

func (s *authorService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}
