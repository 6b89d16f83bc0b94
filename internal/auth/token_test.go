package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyCodec(t *testing.T) {
	codec := NewLegacyCodec()

	token, err := codec.Issue("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", token)

	username, err := codec.ResolveUsername(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("alice")
	assert.NoError(t, err)
	assert.NotEqual(t, "alice", token)

	username, err := svc.ResolveUsername(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Issue("alice")
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ResolveUsername(token)
	assert.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTService("test-secret").ResolveUsername("not-a-jwt")
	assert.Error(t, err)
}
