package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedKind string
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"conflict", ErrConflict, http.StatusConflict, "CONFLICT"},
		{"article not found", ErrArticleNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"author not found", ErrAuthorNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"user not found", ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped sentinel", fmt.Errorf("handling request: %w", ErrConflict), http.StatusConflict, "CONFLICT"},
		{"unknown error", fmt.Errorf("disk on fire"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedCode, he.StatusCode)
			assert.Equal(t, tt.expectedKind, he.Code)
			assert.Equal(t, he.Message, he.ToErrorResponse().Error)
		})
	}
}
