package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"recipes_api/internal/config"
	"recipes_api/internal/models"
)

func openSQLite(t *testing.T) *Repository {
	t.Helper()
	repos, closeFn, err := Open(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "recipes.db"),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = closeFn(context.Background()) })
	return repos
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.DB{Driver: "postgres"})
	if !errors.Is(err, config.ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestSQLite_RecipeLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := openSQLite(t)

	created, err := repos.Recipes.Create(ctx, models.RecipeInput{
		Name:       "Chicken nuggets",
		Difficulty: ptrF(2),
		Vegetarian: ptrB(true),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repos.Recipes.GetByID(ctx, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got.Name != created.Name || *got.Difficulty != 2 || !*got.Vegetarian {
		t.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
	}

	updated, err := repos.Recipes.Update(ctx, created.ID, models.RecipePatch{Name: ptrS("Not chicken nuggets")})
	if err != nil || updated == nil {
		t.Fatalf("Update: updated=%v err=%v", updated, err)
	}
	if updated.Name != "Not chicken nuggets" || *updated.Difficulty != 2 {
		t.Fatalf("patch should only touch name: %+v", updated)
	}

	list, err := repos.Recipes.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List: len=%d err=%v", len(list), err)
	}

	deleted, err := repos.Recipes.Delete(ctx, created.ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repos.Recipes.Delete(ctx, created.ID)
	if err != nil || deleted {
		t.Fatalf("second Delete: deleted=%v err=%v", deleted, err)
	}
}

func TestSQLite_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	repos := openSQLite(t)

	id, err := repos.Auth.Create(ctx, "admin", "hash-1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repos.Auth.Create(ctx, "admin", "hash-2"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	if err := repos.Auth.UpdatePassword(ctx, id, "hash-3"); err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}
	u, err := repos.Auth.GetByUsername(ctx, "admin")
	if err != nil || u == nil {
		t.Fatalf("GetByUsername: u=%v err=%v", u, err)
	}
	if u.ID != id || u.PasswordHash != "hash-3" {
		t.Fatalf("unexpected user: %+v", u)
	}
}
