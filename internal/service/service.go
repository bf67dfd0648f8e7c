package service

import (
	"context"
	"time"

	"recipes_api/internal/models"
	"recipes_api/internal/repository"
)

// Authorization covers credential checks and access tokens.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ParseToken(accessToken string) (string, error)
	ChangePassword(ctx context.Context, username, password string) error
}

// Recipes exposes CRUD over the recipe store. Payloads are expected to be
// validated already.
type Recipes interface {
	SaveRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error)
	AllRecipes(ctx context.Context) ([]models.Recipe, error)
	FetchByID(ctx context.Context, id string) (models.Recipe, error)
	FetchByIDAndUpdate(ctx context.Context, id string, patch models.RecipePatch) (models.Recipe, error)
	FetchByIDAndDelete(ctx context.Context, id string) error
}

// AuthConfig holds token signing parameters.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Recipes
}

func NewService(repos *repository.Repository, authCfg AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, authCfg),
		Recipes:       NewRecipeService(repos.Recipes),
	}
}
