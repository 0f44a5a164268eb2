// Package store defines the persistence interface for the Mealboard server.
package store

import (
	"context"

	"github.com/mealboardapp/mealboard-server/internal/domain"
)

// Store defines the interface for all persistence operations.
type Store interface {
	UserStore
	RecipeStore
	FavoriteStore
	CalendarEntryStore

	Close() error
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RecipeStore persists recipes and their ingredient lists.
type RecipeStore interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	GetRecipesByIDs(ctx context.Context, ids []string) (map[string]*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error
	DeleteRecipe(ctx context.Context, id string) error
	ListRecipesVisibleTo(ctx context.Context, userID string) ([]*domain.Recipe, error)
}

// FavoriteStore persists per-user recipe favorites.
type FavoriteStore interface {
	SetFavorite(ctx context.Context, userID, recipeID string, favorite bool) error
	IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
	ListFavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error)
}

// CalendarEntryStore persists scheduled recipes.
//
// UpsertCalendarEntry is idempotent on the (user, recipe, date)
// triple: scheduling an already-scheduled recipe returns the existing
// entry unchanged.
type CalendarEntryStore interface {
	UpsertCalendarEntry(ctx context.Context, entry *domain.CalendarEntry) (*domain.CalendarEntry, error)
	DeleteCalendarEntry(ctx context.Context, userID, recipeID string, date domain.Date) error
	ListCalendarEntries(ctx context.Context, userID string, start, end domain.Date) ([]*domain.CalendarEntry, error)
}
