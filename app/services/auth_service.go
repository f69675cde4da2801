package services

import (
	"errors"

	"github.com/shashiranjanraj/medicare/app/models"
	"github.com/shashiranjanraj/medicare/app/repositories"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/auth"
	"gorm.io/gorm"
)

// RegisterInput is the registration request body.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,min=3,max=80"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"nullable,max=50"`
	LastName  string `json:"last_name" validate:"nullable,max=50"`
}

// TokenPair is an issued access/refresh credential pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService implements login, registration, and token rotation.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login verifies the credentials (username or email plus password) for an
// active account and issues a token pair. Every failure mode returns the
// same Auth error so the response does not reveal which part was wrong.
func (s *AuthService) Login(identifier, password string) (TokenPair, models.User, error) {
	invalid := apperr.New(apperr.Auth, "Invalid username or password")

	user, err := s.users.FindByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, models.User{}, invalid
		}
		return TokenPair{}, models.User{}, apperr.Wrap(apperr.Internal, "Login failed", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) || !user.IsActive {
		return TokenPair{}, models.User{}, invalid
	}

	access, err := auth.GenerateAccessToken(user.Username)
	if err != nil {
		return TokenPair{}, models.User{}, apperr.Wrap(apperr.Internal, "Login failed", err)
	}
	refresh, err := auth.GenerateRefreshToken(user.Username)
	if err != nil {
		return TokenPair{}, models.User{}, apperr.Wrap(apperr.Internal, "Login failed", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, user, nil
}

// Register creates a new active user. Duplicate username or email is a
// conflict; the partial write protection comes from the single INSERT.
func (s *AuthService) Register(input RegisterInput) (models.User, error) {
	taken, err := s.users.ExistsByUsernameOrEmail(input.Username, input.Email)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.Internal, "Registration failed", err)
	}
	if taken {
		return models.User{}, apperr.New(apperr.Conflict, "Username or email already exists")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.Internal, "Registration failed", err)
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
	}

	if err := s.users.Create(&user); err != nil {
		return models.User{}, apperr.Wrap(apperr.Internal, "Registration failed", err)
	}

	return user, nil
}

// Refresh issues a new access token for the already-verified subject of a
// refresh token.
func (s *AuthService) Refresh(username string) (string, error) {
	access, err := auth.GenerateAccessToken(username)
	if err != nil {
		return "", apperr.Wrap(apperr.Internal, "Token refresh failed", err)
	}
	return access, nil
}

// Profile fetches the caller's user record.
func (s *AuthService) Profile(username string) (models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperr.New(apperr.NotFound, "User not found")
		}
		return models.User{}, apperr.Wrap(apperr.Internal, "Failed to fetch profile", err)
	}
	return user, nil
}
