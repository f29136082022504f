package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Anotida-Much/task-manager/internal/model"
)

// Claims represents JWT claims carrying the authenticated user.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key
// and token lifetime.
func NewJWT(secretKey string, tokenTTL time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, tokenTTL: tokenTTL}
}

const bearerPrefix = "Bearer "

// Generate creates a signed token embedding the user ID and email.
func (j *JWT) Generate(userID int64, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the signature and expiry and extracts the claims.
func (j *JWT) Parse(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("token is invalid")
	}

	return model.TokenClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ExtractFromHeader returns the bearer token from an Authorization
// header value. The header must start with the literal "Bearer " scheme.
func ExtractFromHeader(headerValue string) (string, error) {
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return "", fmt.Errorf("authorization header must start with Bearer")
	}
	return headerValue[len(bearerPrefix):], nil
}
