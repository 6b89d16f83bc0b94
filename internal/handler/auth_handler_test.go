package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "infohub/internal/errors"
	"infohub/internal/model"
	"infohub/internal/web"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	e.Renderer = web.NewRenderer()
	return e
}

func postForm(e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Token(t *testing.T) {
	t.Run("login returns bearer token equal to username", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "secret").Return("alice", nil)

		e := newTestEcho()
		c, rec := postForm(e, "/token", url.Values{
			"username": {"alice"},
			"password": {"secret"},
		})

		h := NewAuthHandler(mockSvc)
		assert.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad credentials map to 400", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "alice", "wrong").Return("", apperrors.ErrInvalidCredentials)

		e := newTestEcho()
		c, _ := postForm(e, "/token", url.Values{
			"username": {"alice"},
			"password": {"wrong"},
		})

		h := NewAuthHandler(mockSvc)
		err := h.Token(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing password is a validation error", func(t *testing.T) {
		e := newTestEcho()
		c, _ := postForm(e, "/token", url.Values{"username": {"alice"}})

		h := NewAuthHandler(new(MockAuthService))
		err := h.Token(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("renders success view", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Register", mock.Anything, "alice", "alice@x.com", "secret").Return(&model.User{
			ID:       1,
			Username: "alice",
			Email:    "alice@x.com",
		}, nil)

		e := newTestEcho()
		c, rec := postForm(e, "/register", url.Values{
			"username": {"alice"},
			"email":    {"alice@x.com"},
			"password": {"secret"},
		})

		h := NewAuthHandler(mockSvc)
		assert.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice")
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate registration maps to 409", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Register", mock.Anything, "alice", "alice@x.com", "secret").Return(nil, apperrors.ErrConflict)

		e := newTestEcho()
		c, _ := postForm(e, "/register", url.Values{
			"username": {"alice"},
			"email":    {"alice@x.com"},
			"password": {"secret"},
		})

		h := NewAuthHandler(mockSvc)
		err := h.Register(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusConflict, he.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("renders the resolved user", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user", &model.User{ID: 1, Username: "alice", Email: "alice@x.com"})

		h := NewAuthHandler(new(MockAuthService))
		assert.NoError(t, h.Profile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alice@x.com")
	})

	t.Run("missing user is unauthorized", func(t *testing.T) {
		e := newTestEcho()
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewAuthHandler(new(MockAuthService))
		err := h.Profile(c)
		assert.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
