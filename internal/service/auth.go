package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Anotida-Much/task-manager/internal/logger"
	"github.com/Anotida-Much/task-manager/internal/model"
)

// bcryptCost is high enough to resist offline brute force on leaked
// hashes.
const bcryptCost = 12

// AuthResult is a freshly authenticated user plus their token.
type AuthResult struct {
	User  model.UserPublic `json:"user"`
	Token string           `json:"token"`
}

type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new account and issues its first token. The email
// is normalized before any lookup so casing and stray whitespace cannot
// mint duplicate accounts.
func (a *Auth) Register(ctx context.Context, email, password, name string) (AuthResult, error) {
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: registering user", "email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return AuthResult{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, email, string(hash), name)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			// Lost the race against a concurrent registration.
			return AuthResult{}, model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered", "email", email, "user_id", user.ID)

	return AuthResult{User: user, Token: tokenString}, nil
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: logging in user", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return AuthResult{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return AuthResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password verification failed", "email", email)
		return AuthResult{}, model.ErrInvalidCredentials
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful", "email", email, "user_id", user.ID)

	return AuthResult{User: user.Public(), Token: tokenString}, nil
}

// Profile resolves the authenticated identity back to a stored user.
func (a *Auth) Profile(ctx context.Context, userID int64) (model.UserPublic, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserPublic{}, model.ErrNotFound
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.UserPublic{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
