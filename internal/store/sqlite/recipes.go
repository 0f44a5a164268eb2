package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mealboardapp/mealboard-server/internal/domain"
	"github.com/mealboardapp/mealboard-server/internal/store"
)

// recipeColumns is the ordered list of columns selected in recipe queries.
// Must match the scan order in scanRecipe.
const recipeColumns = `id, owner_id, title, description, image_url, servings, prep_time_minutes, cook_time_minutes, visibility, created_at, updated_at`

func scanRecipe(scanner interface{ Scan(dest ...any) error }) (*domain.Recipe, error) {
	var r domain.Recipe

	var (
		createdAt   string
		updatedAt   string
		description sql.NullString
		imageURL    sql.NullString
		visibility  string
	)

	err := scanner.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Title,
		&description,
		&imageURL,
		&r.Servings,
		&r.PrepTimeMinutes,
		&r.CookTimeMinutes,
		&visibility,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		r.Description = description.String
	}
	if imageURL.Valid {
		r.ImageURL = imageURL.String
	}
	r.Visibility = domain.RecipeVisibility(visibility)

	if r.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &r, nil
}

// loadIngredients loads the ordered ingredient lines for a recipe.
func (s *Store) loadIngredients(ctx context.Context, recipeID string) ([]domain.RecipeIngredient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, quantity, unit FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position`,
		recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []domain.RecipeIngredient
	for rows.Next() {
		var ing domain.RecipeIngredient
		if err := rows.Scan(&ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// insertIngredients writes a recipe's ingredient lines inside tx.
func insertIngredients(ctx context.Context, tx *sql.Tx, recipeID string, ingredients []domain.RecipeIngredient) error {
	for i, ing := range ingredients {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit)
			VALUES (?, ?, ?, ?, ?)`,
			recipeID, i, ing.Name, ing.Quantity, ing.Unit)
		if err != nil {
			return err
		}
	}
	return nil
}

// CreateRecipe inserts a new recipe and its ingredient lines.
// Returns store.ErrAlreadyExists on duplicate ID.
func (s *Store) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recipes (id, owner_id, title, description, image_url, servings, prep_time_minutes, cook_time_minutes, visibility, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recipe.ID,
		recipe.OwnerID,
		recipe.Title,
		nullString(recipe.Description),
		nullString(recipe.ImageURL),
		recipe.Servings,
		recipe.PrepTimeMinutes,
		recipe.CookTimeMinutes,
		string(recipe.Visibility),
		formatTime(recipe.CreatedAt),
		formatTime(recipe.UpdatedAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return store.ErrAlreadyExists
		}
		return err
	}

	if err := insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients); err != nil {
		return err
	}
	return tx.Commit()
}

// GetRecipe retrieves a recipe with its ingredient lines.
func (s *Store) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)

	recipe, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if recipe.Ingredients, err = s.loadIngredients(ctx, id); err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetRecipesByIDs retrieves recipes by ID, keyed by ID. Missing IDs
// are absent from the result rather than an error, so callers can
// treat deleted recipes as gone.
func (s *Store) GetRecipesByIDs(ctx context.Context, ids []string) (map[string]*domain.Recipe, error) {
	result := make(map[string]*domain.Recipe, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		result[recipe.ID] = recipe
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for id, recipe := range result {
		if recipe.Ingredients, err = s.loadIngredients(ctx, id); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// UpdateRecipe updates a recipe and replaces its ingredient lines.
func (s *Store) UpdateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE recipes
		SET title = ?, description = ?, image_url = ?, servings = ?,
		    prep_time_minutes = ?, cook_time_minutes = ?, visibility = ?, updated_at = ?
		WHERE id = ?`,
		recipe.Title,
		nullString(recipe.Description),
		nullString(recipe.ImageURL),
		recipe.Servings,
		recipe.PrepTimeMinutes,
		recipe.CookTimeMinutes,
		string(recipe.Visibility),
		formatTime(recipe.UpdatedAt),
		recipe.ID,
	)
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

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, recipe.ID); err != nil {
		return err
	}
	if err := insertIngredients(ctx, tx, recipe.ID, recipe.Ingredients); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteRecipe removes a recipe. Ingredient lines and favorites
// cascade via foreign keys; calendar entries are left in place and
// filtered out on read.
func (s *Store) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
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

// ListRecipesVisibleTo lists public recipes plus the user's own
// private ones, newest first.
func (s *Store) ListRecipesVisibleTo(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes
		 WHERE visibility = 'public' OR owner_id = ?
		 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, recipe := range recipes {
		if recipe.Ingredients, err = s.loadIngredients(ctx, recipe.ID); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}
