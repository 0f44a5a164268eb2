package sqlite

import (
	"context"
	"testing"
)

func TestSetAndCheckFavorite(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")

	fav, err := s.IsFavorite(ctx, "user-1", "recipe-1")
	if err != nil {
		t.Fatalf("IsFavorite: %v", err)
	}
	if fav {
		t.Error("fresh recipe should not be a favorite")
	}

	if err := s.SetFavorite(ctx, "user-1", "recipe-1", true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	// Setting again is a no-op, not an error.
	if err := s.SetFavorite(ctx, "user-1", "recipe-1", true); err != nil {
		t.Fatalf("SetFavorite repeat: %v", err)
	}

	fav, err = s.IsFavorite(ctx, "user-1", "recipe-1")
	if err != nil {
		t.Fatalf("IsFavorite: %v", err)
	}
	if !fav {
		t.Error("expected favorite after SetFavorite(true)")
	}

	if err := s.SetFavorite(ctx, "user-1", "recipe-1", false); err != nil {
		t.Fatalf("SetFavorite(false): %v", err)
	}
	fav, _ = s.IsFavorite(ctx, "user-1", "recipe-1")
	if fav {
		t.Error("expected not favorite after SetFavorite(false)")
	}
}

func TestListFavoriteRecipeIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestUser(t, s, "user-2")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")
	insertTestRecipe(t, s, "recipe-2", "user-1", "Soup")

	if err := s.SetFavorite(ctx, "user-1", "recipe-1", true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}
	if err := s.SetFavorite(ctx, "user-2", "recipe-2", true); err != nil {
		t.Fatalf("SetFavorite: %v", err)
	}

	ids, err := s.ListFavoriteRecipeIDs(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListFavoriteRecipeIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != "recipe-1" {
		t.Errorf("got %v, want [recipe-1]", ids)
	}
}
