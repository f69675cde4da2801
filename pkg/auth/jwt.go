package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/medicare/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TypeAccess marks a short-lived access token (24h validity).
	TypeAccess = "access"
	// TypeRefresh marks a longer-lived refresh token (7 days).
	TypeRefresh = "refresh"

	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

var (
	// ErrTokenExpired is returned when the token was valid but is past
	// its expiry. Callers use it to send a distinct 401 body.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrWrongTokenType means e.g. an access token was presented where
	// a refresh token is required.
	ErrWrongTokenType = errors.New("wrong token type")
)

// Claims is the typed JWT payload. The subject is the username.
type Claims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string { return c.Subject }

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateAccessToken creates a signed 24-hour access token for username.
func GenerateAccessToken(username string) (string, error) {
	return generate(username, TypeAccess, accessTTL)
}

// GenerateRefreshToken creates a signed 7-day refresh token for username.
func GenerateRefreshToken(username string) (string, error) {
	return generate(username, TypeRefresh, refreshTTL)
}

func generate(username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and verifies a token of the expected type.
// Returns ErrTokenExpired for an expired-but-otherwise-valid token so the
// API can tell the client to refresh rather than re-authenticate.
func ValidateToken(t, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
