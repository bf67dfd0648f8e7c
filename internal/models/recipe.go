package models

import "time"

// Recipe is a stored recipe document.
type Recipe struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Difficulty *float64  `json:"difficulty,omitempty"`
	Vegetarian *bool     `json:"vegetarian,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RecipeInput is a validated create payload.
type RecipeInput struct {
	Name       string
	Difficulty *float64
	Vegetarian *bool
}

// RecipePatch is a validated partial update; nil fields are left untouched.
type RecipePatch struct {
	Name       *string
	Difficulty *float64
	Vegetarian *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p RecipePatch) IsEmpty() bool {
	return p.Name == nil && p.Difficulty == nil && p.Vegetarian == nil
}
