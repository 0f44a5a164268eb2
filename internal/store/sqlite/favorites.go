package sqlite

import (
	"context"
	"time"
)

// SetFavorite marks or unmarks a recipe as a favorite for a user.
// Both directions are idempotent.
func (s *Store) SetFavorite(ctx context.Context, userID, recipeID string, favorite bool) error {
	if favorite {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO recipe_favorites (user_id, recipe_id, created_at)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id, recipe_id) DO NOTHING`,
			userID, recipeID, formatTime(time.Now()))
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM recipe_favorites WHERE user_id = ? AND recipe_id = ?`,
		userID, recipeID)
	return err
}

// IsFavorite reports whether the user has favorited the recipe.
func (s *Store) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recipe_favorites WHERE user_id = ? AND recipe_id = ?`,
		userID, recipeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFavoriteRecipeIDs returns the user's favorited recipe IDs,
// most recently favorited first.
func (s *Store) ListFavoriteRecipeIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT recipe_id FROM recipe_favorites WHERE user_id = ? ORDER BY created_at DESC, recipe_id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
