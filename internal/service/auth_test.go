package service

import (
	"testing"

	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	s := NewAuthService(kvstore.NewMemory(), "test-secret")

	token, err := s.Register("Pat", "pat@example.com", "hunter22", "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	token, err = s.Login("pat@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, claims.Role)

	user, ok := s.FindUser(claims.UserID)
	require.True(t, ok)
	assert.Equal(t, "pat@example.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := NewAuthService(kvstore.NewMemory(), "test-secret")

	_, err := s.Register("Pat", "pat@example.com", "hunter22", "")
	require.NoError(t, err)

	_, err = s.Register("Other", "Pat@Example.com", "different", "")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginWrongPassword(t *testing.T) {
	s := NewAuthService(kvstore.NewMemory(), "test-secret")

	_, err := s.Register("Pat", "pat@example.com", "hunter22", "")
	require.NoError(t, err)

	_, err = s.Login("pat@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeededAdminCanLogin(t *testing.T) {
	s := NewAuthService(kvstore.NewMemory(), "test-secret")

	token, err := s.Login("admin@allersafe.com", "admin123")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin-default", claims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := NewAuthService(kvstore.NewMemory(), "test-secret")
	_, err := s.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	a := NewAuthService(kvstore.NewMemory(), "secret-a")
	b := NewAuthService(kvstore.NewMemory(), "secret-b")

	token, err := a.Register("Pat", "pat@example.com", "hunter22", "")
	require.NoError(t, err)

	_, err = b.ValidateToken(token)
	assert.Error(t, err)
}

func TestUsersPersistAcrossServices(t *testing.T) {
	store := kvstore.NewMemory()

	a := NewAuthService(store, "test-secret")
	_, err := a.Register("Pat", "pat@example.com", "hunter22", "")
	require.NoError(t, err)

	b := NewAuthService(store, "test-secret")
	_, err = b.Login("pat@example.com", "hunter22")
	assert.NoError(t, err)
}
