package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mealboardapp/mealboard-server/internal/domain"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

func TestCreateAndGetRecipe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")

	now := time.Now()
	recipe := &domain.Recipe{
		ID:          "recipe-1",
		OwnerID:     "user-1",
		Title:       "Pancakes",
		Description: "Weekend breakfast staple",
		Servings:    4,
		Visibility:  domain.VisibilityPublic,
		Ingredients: []domain.RecipeIngredient{
			{Name: "Flour", Quantity: "200", Unit: "g"},
			{Name: "Milk", Quantity: "300", Unit: "ml"},
			{Name: "Salt", Quantity: "a pinch"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateRecipe(ctx, recipe); err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	got, err := s.GetRecipe(ctx, "recipe-1")
	if err != nil {
		t.Fatalf("GetRecipe: %v", err)
	}
	if got.Title != recipe.Title {
		t.Errorf("Title: got %q, want %q", got.Title, recipe.Title)
	}
	if got.Description != recipe.Description {
		t.Errorf("Description: got %q, want %q", got.Description, recipe.Description)
	}
	if got.Servings != recipe.Servings {
		t.Errorf("Servings: got %d, want %d", got.Servings, recipe.Servings)
	}
	if got.Visibility != domain.VisibilityPublic {
		t.Errorf("Visibility: got %q, want public", got.Visibility)
	}

	// Ingredient lines keep their order and free-text quantities.
	if len(got.Ingredients) != 3 {
		t.Fatalf("Ingredients: got %d, want 3", len(got.Ingredients))
	}
	if got.Ingredients[0].Name != "Flour" || got.Ingredients[0].Quantity != "200" || got.Ingredients[0].Unit != "g" {
		t.Errorf("Ingredients[0]: got %+v", got.Ingredients[0])
	}
	if got.Ingredients[2].Quantity != "a pinch" {
		t.Errorf("Ingredients[2].Quantity: got %q, want %q", got.Ingredients[2].Quantity, "a pinch")
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetRecipe(context.Background(), "recipe-missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetRecipesByIDsSkipsMissing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")
	insertTestRecipe(t, s, "recipe-2", "user-1", "Soup")

	got, err := s.GetRecipesByIDs(ctx, []string{"recipe-1", "recipe-gone", "recipe-2"})
	if err != nil {
		t.Fatalf("GetRecipesByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d recipes, want 2", len(got))
	}
	if got["recipe-1"] == nil || got["recipe-2"] == nil {
		t.Errorf("missing expected recipes: %v", got)
	}
	if _, ok := got["recipe-gone"]; ok {
		t.Error("deleted recipe should be absent, not present")
	}
}

func TestUpdateRecipeReplacesIngredients(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")

	now := time.Now()
	recipe := &domain.Recipe{
		ID:         "recipe-1",
		OwnerID:    "user-1",
		Title:      "Soup",
		Visibility: domain.VisibilityPublic,
		Ingredients: []domain.RecipeIngredient{
			{Name: "Carrot", Quantity: "2"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateRecipe(ctx, recipe); err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	recipe.Title = "Carrot Soup"
	recipe.Ingredients = []domain.RecipeIngredient{
		{Name: "Carrot", Quantity: "4"},
		{Name: "Stock", Quantity: "1", Unit: "l"},
	}
	if err := s.UpdateRecipe(ctx, recipe); err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}

	got, err := s.GetRecipe(ctx, "recipe-1")
	if err != nil {
		t.Fatalf("GetRecipe: %v", err)
	}
	if got.Title != "Carrot Soup" {
		t.Errorf("Title: got %q", got.Title)
	}
	if len(got.Ingredients) != 2 {
		t.Fatalf("Ingredients: got %d, want 2", len(got.Ingredients))
	}
	if got.Ingredients[0].Quantity != "4" {
		t.Errorf("Ingredients[0].Quantity: got %q, want 4", got.Ingredients[0].Quantity)
	}
}

func TestDeleteRecipeLeavesCalendarEntries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")

	now := time.Now()
	recipe := &domain.Recipe{
		ID:         "recipe-1",
		OwnerID:    "user-1",
		Title:      "Pancakes",
		Visibility: domain.VisibilityPublic,
		Ingredients: []domain.RecipeIngredient{
			{Name: "Flour", Quantity: "200", Unit: "g"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CreateRecipe(ctx, recipe); err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}

	entry := &domain.CalendarEntry{
		ID:        "entry-1",
		UserID:    "user-1",
		RecipeID:  "recipe-1",
		Date:      mustDate(t, "2026-09-10"),
		CreatedAt: now,
	}
	if _, err := s.UpsertCalendarEntry(ctx, entry); err != nil {
		t.Fatalf("UpsertCalendarEntry: %v", err)
	}

	if err := s.DeleteRecipe(ctx, "recipe-1"); err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}

	if _, err := s.GetRecipe(ctx, "recipe-1"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// The calendar entry survives; the read path is responsible for
	// dropping entries whose recipe is gone.
	entries, err := s.ListCalendarEntries(ctx, "user-1", mustDate(t, "2026-09-01"), mustDate(t, "2026-09-30"))
	if err != nil {
		t.Fatalf("ListCalendarEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected entry to survive recipe delete, got %d entries", len(entries))
	}
}

func TestListRecipesVisibleTo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-alice")
	insertTestUser(t, s, "user-bob")

	now := time.Now()
	recipes := []*domain.Recipe{
		{ID: "recipe-1", OwnerID: "user-alice", Title: "Public A", Visibility: domain.VisibilityPublic},
		{ID: "recipe-2", OwnerID: "user-alice", Title: "Private A", Visibility: domain.VisibilityPrivate},
		{ID: "recipe-3", OwnerID: "user-bob", Title: "Private B", Visibility: domain.VisibilityPrivate},
	}
	for _, r := range recipes {
		r.CreatedAt, r.UpdatedAt = now, now
		if err := s.CreateRecipe(ctx, r); err != nil {
			t.Fatalf("CreateRecipe %s: %v", r.ID, err)
		}
	}

	visible, err := s.ListRecipesVisibleTo(ctx, "user-alice")
	if err != nil {
		t.Fatalf("ListRecipesVisibleTo: %v", err)
	}
	ids := map[string]bool{}
	for _, r := range visible {
		ids[r.ID] = true
	}
	if !ids["recipe-1"] || !ids["recipe-2"] {
		t.Errorf("alice should see her own recipes, got %v", ids)
	}
	if ids["recipe-3"] {
		t.Error("alice should not see bob's private recipe")
	}
}
