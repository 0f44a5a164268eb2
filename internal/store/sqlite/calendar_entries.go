package sqlite

import (
	"context"

	"github.com/mealboardapp/mealboard-server/internal/domain"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

// calendarEntryColumns is the ordered list of columns selected in
// calendar entry queries. Must match the scan order in scanCalendarEntry.
const calendarEntryColumns = `id, user_id, recipe_id, date, created_at, updated_at`

func scanCalendarEntry(scanner interface{ Scan(dest ...any) error }) (*domain.CalendarEntry, error) {
	var e domain.CalendarEntry
	var createdAt, updatedAt string

	err := scanner.Scan(
		&e.ID,
		&e.UserID,
		&e.RecipeID,
		&e.Date,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertCalendarEntry schedules a recipe on a date. If an entry for
// the same (user, recipe, date) triple already exists the insert is a
// no-op and the existing entry is returned, so repeated scheduling
// never duplicates and never churns entry IDs.
func (s *Store) UpsertCalendarEntry(ctx context.Context, entry *domain.CalendarEntry) (*domain.CalendarEntry, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calendar_entries (id, user_id, recipe_id, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, recipe_id, date) DO NOTHING`,
		entry.ID,
		entry.UserID,
		entry.RecipeID,
		entry.Date,
		formatTime(entry.CreatedAt),
		formatTime(entry.UpdatedAt),
	)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+calendarEntryColumns+` FROM calendar_entries
		 WHERE user_id = ? AND recipe_id = ? AND date = ?`,
		entry.UserID, entry.RecipeID, entry.Date)
	return scanCalendarEntry(row)
}

// DeleteCalendarEntry removes the user's entry for a recipe on a
// date. Returns store.ErrNotFound when no row matched, which covers
// both a missing entry and an entry owned by another user.
func (s *Store) DeleteCalendarEntry(ctx context.Context, userID, recipeID string, date domain.Date) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM calendar_entries WHERE user_id = ? AND recipe_id = ? AND date = ?`,
		userID, recipeID, date)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListCalendarEntries returns the user's entries with start <= date <=
// end, ordered by date then creation time.
func (s *Store) ListCalendarEntries(ctx context.Context, userID string, start, end domain.Date) ([]*domain.CalendarEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+calendarEntryColumns+` FROM calendar_entries
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 ORDER BY date, created_at, id`,
		userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.CalendarEntry
	for rows.Next() {
		entry, err := scanCalendarEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
