package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mealboardapp/mealboard-server/internal/domain"
	domainerrors "github.com/mealboardapp/mealboard-server/internal/errors"
	"github.com/mealboardapp/mealboard-server/internal/id"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

// RecipeService orchestrates recipe directory operations with
// visibility enforcement.
type RecipeService struct {
	recipes   store.RecipeStore
	favorites store.FavoriteStore
	logger    *slog.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(recipes store.RecipeStore, favorites store.FavoriteStore, logger *slog.Logger) *RecipeService {
	return &RecipeService{
		recipes:   recipes,
		favorites: favorites,
		logger:    logger,
	}
}

// RecipeWithFavorite is a recipe annotated with the viewer's favorite flag.
type RecipeWithFavorite struct {
	*domain.Recipe
	IsFavorite bool `json:"isFavorite"`
}

// CreateRecipe creates a recipe owned by userID.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID string, recipe *domain.Recipe) (*domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if recipe.Title == "" {
		return nil, domainerrors.Validation("recipe title cannot be empty")
	}
	if recipe.Visibility == "" {
		recipe.Visibility = domain.VisibilityPublic
	}
	if recipe.Visibility != domain.VisibilityPublic && recipe.Visibility != domain.VisibilityPrivate {
		return nil, domainerrors.Validationf("unknown visibility %q", recipe.Visibility)
	}

	recipeID, err := id.Generate("recipe")
	if err != nil {
		return nil, fmt.Errorf("generate recipe ID: %w", err)
	}

	now := time.Now()
	recipe.ID = recipeID
	recipe.OwnerID = userID
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	if err := s.recipes.CreateRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	s.logger.Info("recipe created", "recipe_id", recipeID, "owner_id", userID)
	return recipe, nil
}

// GetRecipe returns a recipe if userID may see it.
// Private recipes of other users are reported as forbidden.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, recipeID string) (*RecipeWithFavorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("recipe not found")
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	if !recipe.VisibleTo(userID) {
		return nil, domainerrors.Forbidden("recipe is private")
	}

	fav, err := s.favorites.IsFavorite(ctx, userID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("check favorite: %w", err)
	}
	return &RecipeWithFavorite{Recipe: recipe, IsFavorite: fav}, nil
}

// ListRecipes returns all recipes visible to userID with favorite flags.
func (s *RecipeService) ListRecipes(ctx context.Context, userID string) ([]*RecipeWithFavorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recipes, err := s.recipes.ListRecipesVisibleTo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	favoriteIDs, err := s.favorites.ListFavoriteRecipeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	favorites := make(map[string]bool, len(favoriteIDs))
	for _, fid := range favoriteIDs {
		favorites[fid] = true
	}

	result := make([]*RecipeWithFavorite, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, &RecipeWithFavorite{Recipe: r, IsFavorite: favorites[r.ID]})
	}
	return result, nil
}

// SetFavorite marks or unmarks a visible recipe as the user's favorite.
func (s *RecipeService) SetFavorite(ctx context.Context, userID, recipeID string, favorite bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("recipe not found")
		}
		return fmt.Errorf("get recipe: %w", err)
	}
	if !recipe.VisibleTo(userID) {
		return domainerrors.Forbidden("recipe is private")
	}

	if err := s.favorites.SetFavorite(ctx, userID, recipeID, favorite); err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	return nil
}
