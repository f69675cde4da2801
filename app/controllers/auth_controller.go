package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/medicare/app/resources"
	"github.com/shashiranjanraj/medicare/app/services"
	"github.com/shashiranjanraj/medicare/pkg/apperr"
	"github.com/shashiranjanraj/medicare/pkg/auth"
	"github.com/shashiranjanraj/medicare/pkg/bind"
	"github.com/shashiranjanraj/medicare/pkg/logger"
	"github.com/shashiranjanraj/medicare/pkg/response"
)

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthController serves login, registration, token refresh, logout and
// the profile endpoint.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

// Login handles POST /api/login. The username field accepts a username or
// an email address.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		validationError(w, errs)
		return
	}

	tokens, user, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		response.AppError(w, apperr.From(err, "Login failed"))
		return
	}

	logger.WithCtx(r.Context()).Info("user logged in", "username", user.Username)

	response.OK(w, map[string]interface{}{
		"message":       "Login successful",
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"user":          resources.NewUserPayload(user),
	})
}

// Register handles POST /api/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		validationError(w, errs)
		return
	}

	user, err := c.service.Register(input)
	if err != nil {
		response.AppError(w, apperr.From(err, "Registration failed"))
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "username", user.Username)

	response.Created(w, map[string]interface{}{
		"message": "User registered successfully",
		"user":    resources.NewUserPayload(user),
	})
}

// Refresh handles POST /api/refresh. The refresh-token middleware has
// already verified the token and stored its subject in the context.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromCtx(r.Context())

	access, err := c.service.Refresh(username)
	if err != nil {
		response.AppError(w, apperr.From(err, "Token refresh failed"))
		return
	}

	response.OK(w, map[string]string{"access_token": access})
}

// Logout handles POST /api/logout. Tokens are stateless, so logout is a
// client-side discard; the endpoint exists so clients have a uniform flow.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"message": "Successfully logged out"})
}

// Profile handles GET /api/profile.
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromCtx(r.Context())

	user, err := c.service.Profile(username)
	if err != nil {
		response.AppError(w, apperr.From(err, "Failed to fetch profile"))
		return
	}

	response.OK(w, map[string]interface{}{"user": resources.NewUserPayload(user)})
}
