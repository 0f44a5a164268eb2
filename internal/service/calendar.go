package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mealboardapp/mealboard-server/internal/calendar"
	"github.com/mealboardapp/mealboard-server/internal/domain"
	domainerrors "github.com/mealboardapp/mealboard-server/internal/errors"
	"github.com/mealboardapp/mealboard-server/internal/id"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

// CalendarService orchestrates meal scheduling: putting recipes on
// dates, taking them off, and reading the calendar back enriched with
// recipe data.
type CalendarService struct {
	entries store.CalendarEntryStore
	recipes store.RecipeStore
	logger  *slog.Logger

	// now is swapped in tests to pin the clock.
	now func() domain.Date
}

// NewCalendarService creates a new calendar service.
func NewCalendarService(entries store.CalendarEntryStore, recipes store.RecipeStore, logger *slog.Logger) *CalendarService {
	return &CalendarService{
		entries: entries,
		recipes: recipes,
		logger:  logger,
		now:     domain.Today,
	}
}

// EntryWithRecipe is a calendar entry enriched with its recipe.
type EntryWithRecipe struct {
	domain.CalendarEntry
	Recipe *domain.Recipe `json:"recipe"`
}

// Schedule puts a recipe on the user's calendar for a date.
//
// The recipe must exist and be public, and the date must not be in
// the past (by the server's UTC calendar). Private recipes cannot be
// scheduled by anyone, their author included. Scheduling the same
// recipe on the same date twice returns the existing entry.
func (s *CalendarService) Schedule(ctx context.Context, userID, recipeID string, date domain.Date) (*EntryWithRecipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if date.Before(s.now()) {
		return nil, domainerrors.Validation("cannot schedule a recipe in the past")
	}

	recipe, err := s.recipes.GetRecipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFound("recipe not found")
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if recipe.Visibility != domain.VisibilityPublic {
		return nil, domainerrors.Forbidden("recipe is private")
	}

	entryID, err := id.Generate("entry")
	if err != nil {
		return nil, fmt.Errorf("generate entry ID: %w", err)
	}

	now := time.Now()
	entry := &domain.CalendarEntry{
		ID:        entryID,
		UserID:    userID,
		RecipeID:  recipeID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	stored, err := s.entries.UpsertCalendarEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("upsert calendar entry: %w", err)
	}

	s.logger.Info("recipe scheduled",
		"entry_id", stored.ID,
		"recipe_id", recipeID,
		"user_id", userID,
		"date", date.String(),
	)
	return &EntryWithRecipe{CalendarEntry: *stored, Recipe: recipe}, nil
}

// Unschedule removes the user's entry for a recipe on a date.
// The delete is always scoped to the caller, so a user can never
// remove another user's entry for the same recipe and date.
func (s *CalendarService) Unschedule(ctx context.Context, userID, recipeID string, date domain.Date) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.entries.DeleteCalendarEntry(ctx, userID, recipeID, date); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFound("calendar entry not found")
		}
		return fmt.Errorf("delete calendar entry: %w", err)
	}

	s.logger.Info("recipe unscheduled",
		"recipe_id", recipeID,
		"user_id", userID,
		"date", date.String(),
	)
	return nil
}

// ListRange returns the user's entries between start and end
// (inclusive), each enriched with its recipe. Entries whose recipe
// has since been deleted are silently omitted rather than erroring,
// so one deleted recipe can't break the whole calendar.
func (s *CalendarService) ListRange(ctx context.Context, userID string, start, end domain.Date) ([]*EntryWithRecipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, domainerrors.Validation("range end is before range start")
	}

	entries, err := s.entries.ListCalendarEntries(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list calendar entries: %w", err)
	}
	return s.enrich(ctx, entries)
}

// ViewDay is one day bucket of an assembled calendar view, carrying
// enriched entries so clients can render recipe titles directly.
type ViewDay struct {
	Date            domain.Date        `json:"date"`
	Entries         []*EntryWithRecipe `json:"entries"`
	IsToday         bool               `json:"isToday"`
	IsCurrentPeriod bool               `json:"isCurrentPeriod"`
}

// View assembles a day, week, or month view of the user's calendar
// around the anchor date.
func (s *CalendarService) View(ctx context.Context, userID string, mode calendar.ViewMode, anchor domain.Date) ([]ViewDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span := calendar.SpanFor(mode, anchor)
	enriched, err := s.ListRange(ctx, userID, span.Start, span.End)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*EntryWithRecipe, len(enriched))
	entries := make([]domain.CalendarEntry, 0, len(enriched))
	for _, e := range enriched {
		byID[e.ID] = e
		entries = append(entries, e.CalendarEntry)
	}

	buckets := calendar.BuildView(mode, anchor, s.now(), entries)
	days := make([]ViewDay, len(buckets))
	for i, b := range buckets {
		day := ViewDay{
			Date:            b.Date,
			IsToday:         b.IsToday,
			IsCurrentPeriod: b.IsCurrentPeriod,
			Entries:         []*EntryWithRecipe{},
		}
		for _, e := range b.Entries {
			day.Entries = append(day.Entries, byID[e.ID])
		}
		days[i] = day
	}
	return days, nil
}

// ShoppingList aggregates the ingredients of every recipe scheduled
// between start and end into one shopping list. A recipe scheduled on
// two days in the range contributes its ingredients twice.
func (s *CalendarService) ShoppingList(ctx context.Context, userID string, start, end domain.Date) ([]calendar.AggregatedIngredient, error) {
	enriched, err := s.ListRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	recipes := make([]*domain.Recipe, 0, len(enriched))
	for _, e := range enriched {
		recipes = append(recipes, e.Recipe)
	}
	return calendar.Aggregate(recipes), nil
}

// enrich attaches recipes to entries, dropping entries whose recipe
// no longer exists.
func (s *CalendarService) enrich(ctx context.Context, entries []*domain.CalendarEntry) ([]*EntryWithRecipe, error) {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !seen[e.RecipeID] {
			seen[e.RecipeID] = true
			ids = append(ids, e.RecipeID)
		}
	}

	recipes, err := s.recipes.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get recipes: %w", err)
	}

	result := make([]*EntryWithRecipe, 0, len(entries))
	for _, e := range entries {
		recipe, ok := recipes[e.RecipeID]
		if !ok {
			s.logger.Debug("skipping entry with deleted recipe",
				"entry_id", e.ID, "recipe_id", e.RecipeID)
			continue
		}
		result = append(result, &EntryWithRecipe{CalendarEntry: *e, Recipe: recipe})
	}
	return result, nil
}
