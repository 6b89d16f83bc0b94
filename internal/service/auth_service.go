package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"infohub/internal/auth"
	apperrors "infohub/internal/errors"
	"infohub/internal/model"
	"infohub/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login, and bearer-token resolution.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, err error)
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	codec    auth.TokenCodec
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, codec auth.TokenCodec) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// Register creates a new user with a hashed password. There is no duplicate
// pre-check: the unique constraints on username and email are the sole
// guard, and a violation is surfaced as a conflict.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the password and issues a bearer token for the user.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// ResolveToken maps a presented bearer token to the user it identifies. The
// password is not re-checked here; in legacy mode the token is the username
// itself and resolution is a plain lookup.
func (s *authService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	username, err := s.codec.ResolveUsername(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
