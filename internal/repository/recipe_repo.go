package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"recipes_api/internal/models"

	"github.com/google/uuid"
)

type RecipeSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewRecipeSQLite(db *sql.DB) *RecipeSQLite {
	return &RecipeSQLite{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ RecipeRepo = (*RecipeSQLite)(nil)

const (
	recipeColumns = `id, name, difficulty, vegetarian, created_at, updated_at`

	insertRecipeSQL = `INSERT INTO recipes (` + recipeColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	selectRecipesSQL = `SELECT ` + recipeColumns + ` FROM recipes ORDER BY created_at ASC, rowid ASC`

	selectRecipeByIDSQL = `SELECT ` + recipeColumns + ` FROM recipes WHERE id = ?`

	deleteRecipeSQL = `DELETE FROM recipes WHERE id = ?`
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s rowScanner) (models.Recipe, error) {
	var (
		rec        models.Recipe
		difficulty sql.NullFloat64
		vegetarian sql.NullBool
	)
	if err := s.Scan(&rec.ID, &rec.Name, &difficulty, &vegetarian, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return models.Recipe{}, err
	}
	if difficulty.Valid {
		d := difficulty.Float64
		rec.Difficulty = &d
	}
	if vegetarian.Valid {
		v := vegetarian.Bool
		rec.Vegetarian = &v
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullBool(p *bool) sql.NullBool {
	if p == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *p, Valid: true}
}

// validID reports whether id could have been generated by this store.
// Anything else is treated as a missing recipe without touching the DB.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Create inserts a recipe with a fresh UUID.
func (r *RecipeSQLite) Create(ctx context.Context, in models.RecipeInput) (models.Recipe, error) {
	now := r.now()
	rec := models.Recipe{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Difficulty: in.Difficulty,
		Vegetarian: in.Vegetarian,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := r.db.ExecContext(ctx, insertRecipeSQL,
		rec.ID, rec.Name, nullFloat(rec.Difficulty), nullBool(rec.Vegetarian), rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("insert recipe %q: %w", in.Name, err)
	}
	return rec, nil
}

// List returns all recipes in insertion order.
func (r *RecipeSQLite) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, selectRecipesSQL)
	if err != nil {
		return nil, fmt.Errorf("select recipes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Recipe, 0, 16)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return out, nil
}

// GetByID returns (nil, nil) for malformed or unknown ids.
func (r *RecipeSQLite) GetByID(ctx context.Context, id string) (*models.Recipe, error) {
	if !validID(id) {
		return nil, nil
	}
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, selectRecipeByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select recipe %s: %w", id, err)
	}
	return &rec, nil
}

// buildUpdateQuery renders an UPDATE ... RETURNING statement touching only the
// fields set in patch.
func buildUpdateQuery(id string, patch models.RecipePatch, now time.Time) (string, []any) {
	var (
		sets []string
		args []any
	)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Difficulty != nil {
		sets = append(sets, "difficulty = ?")
		args = append(args, *patch.Difficulty)
	}
	if patch.Vegetarian != nil {
		sets = append(sets, "vegetarian = ?")
		args = append(args, *patch.Vegetarian)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, now, id)

	q := `UPDATE recipes SET ` + strings.Join(sets, ", ") +
		` WHERE id = ? RETURNING ` + recipeColumns
	return q, args
}

// Update applies patch atomically and returns the stored document, or
// (nil, nil) when the recipe does not exist.
func (r *RecipeSQLite) Update(ctx context.Context, id string, patch models.RecipePatch) (*models.Recipe, error) {
	if !validID(id) {
		return nil, nil
	}
	q, args := buildUpdateQuery(id, patch, r.now())
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update recipe %s: %w", id, err)
	}
	return &rec, nil
}

// Delete removes the recipe and reports whether it existed.
func (r *RecipeSQLite) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	res, err := r.db.ExecContext(ctx, deleteRecipeSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete recipe %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for recipe %s: %w", id, err)
	}
	return n > 0, nil
}
