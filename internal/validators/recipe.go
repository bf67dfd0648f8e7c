// Package validators checks incoming recipe payloads before they reach the
// service layer.
//
// Payloads are validated in their generically decoded JSON form so the wire
// type of every field is still known: a difficulty of "2" is a string and is
// rejected, just like a vegetarian flag of "true".
package validators

import (
	"strings"

	"recipes_api/internal/models"
)

const (
	FieldName       = "name"
	FieldDifficulty = "difficulty"
	FieldVegetarian = "vegetarian"
)

// RecipeValidator turns raw request bodies into validated recipe inputs.
type RecipeValidator struct{}

func NewRecipeValidator() *RecipeValidator {
	return &RecipeValidator{}
}

// ValidateCreate checks a POST body. Name is mandatory; difficulty and
// vegetarian are optional but strictly typed.
func (v *RecipeValidator) ValidateCreate(body map[string]any) (models.RecipeInput, error) {
	name, err := requiredName(body)
	if err != nil {
		return models.RecipeInput{}, err
	}
	difficulty, err := optionalNumber(body)
	if err != nil {
		return models.RecipeInput{}, err
	}
	vegetarian, err := optionalBool(body)
	if err != nil {
		return models.RecipeInput{}, err
	}
	return models.RecipeInput{
		Name:       name,
		Difficulty: difficulty,
		Vegetarian: vegetarian,
	}, nil
}

// ValidateUpdate checks a PATCH body. Every field is optional, but at least
// one recognized field has to be present.
func (v *RecipeValidator) ValidateUpdate(body map[string]any) (models.RecipePatch, error) {
	var patch models.RecipePatch

	if _, ok := body[FieldName]; ok {
		name, err := requiredName(body)
		if err != nil {
			return models.RecipePatch{}, err
		}
		patch.Name = &name
	}

	difficulty, err := optionalNumber(body)
	if err != nil {
		return models.RecipePatch{}, err
	}
	patch.Difficulty = difficulty

	vegetarian, err := optionalBool(body)
	if err != nil {
		return models.RecipePatch{}, err
	}
	patch.Vegetarian = vegetarian

	if patch.IsEmpty() {
		return models.RecipePatch{}, ErrNoFields
	}
	return patch, nil
}

func requiredName(body map[string]any) (string, error) {
	name, ok := body[FieldName].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return "", ErrNameEmpty
	}
	return name, nil
}

// optionalNumber accepts only JSON numbers; null counts as present.
func optionalNumber(body map[string]any) (*float64, error) {
	raw, ok := body[FieldDifficulty]
	if !ok {
		return nil, nil
	}
	n, ok := raw.(float64)
	if !ok {
		return nil, ErrDifficultyNotNumber
	}
	return &n, nil
}

func optionalBool(body map[string]any) (*bool, error) {
	raw, ok := body[FieldVegetarian]
	if !ok {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, ErrVegetarianNotBoolean
	}
	return &b, nil
}
