package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"recipes_api/internal/models"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL           = `INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
	updatePasswordSQL       = `UPDATE users SET password_hash = ? WHERE id = ?`
)

// Create inserts a new user and returns its generated ID.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (string, error) {
	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertUserSQL, id, username, passwordHash); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("insert user %q: %w", username, ErrUsernameTaken)
		}
		return "", fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

// UpdatePassword replaces the stored hash of an existing user.
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, updatePasswordSQL, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("update password for user %s: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %s: %w", userID, err)
	}
	if n == 0 {
		return fmt.Errorf("update password for user %s: %w", userID, sql.ErrNoRows)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
