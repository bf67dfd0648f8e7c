package repository

import (
	"context"
	"errors"

	"recipes_api/internal/models"
)

var ErrUsernameTaken = errors.New("username already exists")

// Authorization is the credential store. Lookups return (nil, nil) when the
// user does not exist.
type Authorization interface {
	Create(ctx context.Context, username, passwordHash string) (string, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}

// RecipeRepo is the recipe store. Lookups by a malformed or unknown id
// return (nil, nil); Delete reports whether a document was removed.
type RecipeRepo interface {
	Create(ctx context.Context, in models.RecipeInput) (models.Recipe, error)
	List(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, id string) (*models.Recipe, error)
	Update(ctx context.Context, id string, patch models.RecipePatch) (*models.Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	Auth    Authorization
	Recipes RecipeRepo
}
