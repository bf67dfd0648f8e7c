package service

import (
	"context"
	"errors"

	"recipes_api/internal/models"
	"recipes_api/internal/repository"
)

// ErrRecipeNotFound is returned for unknown and malformed recipe ids.
var ErrRecipeNotFound = errors.New("recipe not found")

type RecipeService struct {
	repo repository.RecipeRepo
}

func NewRecipeService(repo repository.RecipeRepo) *RecipeService {
	return &RecipeService{repo: repo}
}

func (s *RecipeService) SaveRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	return s.repo.Create(ctx, in)
}

func (s *RecipeService) AllRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.repo.List(ctx)
}

func (s *RecipeService) FetchByID(ctx context.Context, id string) (models.Recipe, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Recipe{}, err
	}
	if rec == nil {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return *rec, nil
}

func (s *RecipeService) FetchByIDAndUpdate(ctx context.Context, id string, patch models.RecipePatch) (models.Recipe, error) {
	if patch.IsEmpty() {
		return s.FetchByID(ctx, id)
	}
	rec, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.Recipe{}, err
	}
	if rec == nil {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return *rec, nil
}

func (s *RecipeService) FetchByIDAndDelete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecipeNotFound
	}
	return nil
}
