package model

import "time"

// Identity is the verified subject of a request.
type Identity struct {
	UserID int64
	Email  string
}

// TokenClaims is the decoded payload of a verified token.
type TokenClaims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager issues and verifies signed identity tokens.
type TokenManager interface {
	Generate(userID int64, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}
