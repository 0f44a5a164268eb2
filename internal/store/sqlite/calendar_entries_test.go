package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mealboardapp/mealboard-server/internal/domain"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

func TestUpsertCalendarEntry(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")

	now := time.Now()
	entry := &domain.CalendarEntry{
		ID:        "entry-1",
		UserID:    "user-1",
		RecipeID:  "recipe-1",
		Date:      mustDate(t, "2026-09-10"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	got, err := s.UpsertCalendarEntry(ctx, entry)
	if err != nil {
		t.Fatalf("UpsertCalendarEntry: %v", err)
	}
	if got.ID != "entry-1" {
		t.Errorf("ID: got %q, want entry-1", got.ID)
	}
	if got.Date.String() != "2026-09-10" {
		t.Errorf("Date: got %s, want 2026-09-10", got.Date)
	}
	if got.UpdatedAt.IsZero() || !got.UpdatedAt.Equal(got.CreatedAt) {
		t.Errorf("UpdatedAt: got %v, want equal to CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestUpsertCalendarEntryIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")

	first := &domain.CalendarEntry{
		ID:        "entry-1",
		UserID:    "user-1",
		RecipeID:  "recipe-1",
		Date:      mustDate(t, "2026-09-10"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := s.UpsertCalendarEntry(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same triple with a fresh ID returns the original entry.
	second := &domain.CalendarEntry{
		ID:        "entry-2",
		UserID:    "user-1",
		RecipeID:  "recipe-1",
		Date:      mustDate(t, "2026-09-10"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	got, err := s.UpsertCalendarEntry(ctx, second)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if got.ID != "entry-1" {
		t.Errorf("ID: got %q, want the original entry-1", got.ID)
	}

	entries, err := s.ListCalendarEntries(ctx, "user-1", mustDate(t, "2026-09-01"), mustDate(t, "2026-09-30"))
	if err != nil {
		t.Fatalf("ListCalendarEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 entry, got %d", len(entries))
	}
}

func TestUpsertSameRecipeDifferentDates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")

	for i, date := range []string{"2026-09-10", "2026-09-11"} {
		entry := &domain.CalendarEntry{
			ID:        "entry-" + string(rune('a'+i)),
			UserID:    "user-1",
			RecipeID:  "recipe-1",
			Date:      mustDate(t, date),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := s.UpsertCalendarEntry(ctx, entry); err != nil {
			t.Fatalf("upsert %s: %v", date, err)
		}
	}

	entries, err := s.ListCalendarEntries(ctx, "user-1", mustDate(t, "2026-09-01"), mustDate(t, "2026-09-30"))
	if err != nil {
		t.Fatalf("ListCalendarEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestDeleteCalendarEntryScopedToUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-alice")
	insertTestUser(t, s, "user-bob")
	insertTestRecipe(t, s, "recipe-1", "user-alice", "Pancakes")

	entry := &domain.CalendarEntry{
		ID:        "entry-1",
		UserID:    "user-alice",
		RecipeID:  "recipe-1",
		Date:      mustDate(t, "2026-09-10"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := s.UpsertCalendarEntry(ctx, entry); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Bob cannot delete Alice's entry.
	err := s.DeleteCalendarEntry(ctx, "user-bob", "recipe-1", mustDate(t, "2026-09-10"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other user's entry, got %v", err)
	}

	// Alice can.
	if err := s.DeleteCalendarEntry(ctx, "user-alice", "recipe-1", mustDate(t, "2026-09-10")); err != nil {
		t.Fatalf("DeleteCalendarEntry: %v", err)
	}

	err = s.DeleteCalendarEntry(ctx, "user-alice", "recipe-1", mustDate(t, "2026-09-10"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListCalendarEntriesRangeInclusive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTestUser(t, s, "user-1")
	insertTestRecipe(t, s, "recipe-1", "user-1", "Pancakes")
	insertTestRecipe(t, s, "recipe-2", "user-1", "Soup")
	insertTestRecipe(t, s, "recipe-3", "user-1", "Salad")
	insertTestRecipe(t, s, "recipe-4", "user-1", "Stew")

	dates := map[string]string{
		"entry-1": "2026-08-31", // before range
		"entry-2": "2026-09-01", // range start
		"entry-3": "2026-09-07", // range end
		"entry-4": "2026-09-08", // after range
	}
	recipeFor := map[string]string{
		"entry-1": "recipe-1", "entry-2": "recipe-2", "entry-3": "recipe-3", "entry-4": "recipe-4",
	}
	for id, date := range dates {
		entry := &domain.CalendarEntry{
			ID:        id,
			UserID:    "user-1",
			RecipeID:  recipeFor[id],
			Date:      mustDate(t, date),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := s.UpsertCalendarEntry(ctx, entry); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	entries, err := s.ListCalendarEntries(ctx, "user-1", mustDate(t, "2026-09-01"), mustDate(t, "2026-09-07"))
	if err != nil {
		t.Fatalf("ListCalendarEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "entry-2" || entries[1].ID != "entry-3" {
		t.Errorf("entries out of order: %s, %s", entries[0].ID, entries[1].ID)
	}
}
