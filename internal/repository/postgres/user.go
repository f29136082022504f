package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Anotida-Much/task-manager/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

const uniqueViolation = "23505"

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, email, password_hash, name, created_at
			  FROM users WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.UserPublic, error) {
	var user model.UserPublic
	query := `SELECT id, email, name, created_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserPublic{}, model.ErrNotFound
		}
		return model.UserPublic{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, name string) (model.UserPublic, error) {
	query := `INSERT INTO users (email, password_hash, name)
			  VALUES ($1, $2, $3)
			  RETURNING id, email, name, created_at`

	var savedUser model.UserPublic
	err := r.db.QueryRow(ctx, query, email, passwordHash, name).Scan(
		&savedUser.ID, &savedUser.Email, &savedUser.Name, &savedUser.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.UserPublic{}, model.ErrEmailTaken
		}
		return model.UserPublic{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
