package services

import (
	"testing"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	newTestDB(t)
	svc := NewAuthService()

	user, err := svc.Register(RegisterInput{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "password123",
		FirstName: "Test",
	})
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Login by username.
	tokens, got, err := svc.Login("testuser", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := auth.ValidateToken(tokens.AccessToken, auth.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username())

	// Login by email with the same field.
	_, _, err = svc.Login("test@example.com", "password123")
	require.NoError(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	newTestDB(t)
	svc := NewAuthService()

	_, err := svc.Register(RegisterInput{
		Username: "testuser", Email: "test@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login("testuser", "wrong")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Auth))
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestLoginUnknownUser(t *testing.T) {
	newTestDB(t)
	svc := NewAuthService()

	_, _, err := svc.Login("nobody", "whatever")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Auth))
}

func TestLoginInactiveAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username: "ghost", Email: "ghost@example.com",
		PasswordHash: hash, IsActive: false,
	}).Error)

	_, _, err = svc.Login("ghost", "password123")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Auth))
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	newTestDB(t)
	svc := NewAuthService()

	_, err := svc.Register(RegisterInput{
		Username: "testuser", Email: "test@example.com", Password: "password123",
	})
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Register(RegisterInput{
		Username: "testuser", Email: "another@example.com", Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Conflict))

	// Same email, different username.
	_, err = svc.Register(RegisterInput{
		Username: "testuser2", Email: "test@example.com", Password: "password123",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Conflict))
}

func TestProfileUnknownUser(t *testing.T) {
	newTestDB(t)
	svc := NewAuthService()

	_, err := svc.Profile("nobody")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.NotFound))
}
