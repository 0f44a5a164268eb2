package domain

import "time"

// RecipeVisibility controls who can see and schedule a recipe.
type RecipeVisibility string

const (
	VisibilityPublic  RecipeVisibility = "public"
	VisibilityPrivate RecipeVisibility = "private"
)

// Recipe is a dish with its ingredient list. Recipes are owned by a
// user; private recipes are only visible to their owner.
type Recipe struct {
	ID              string             `json:"id"`
	OwnerID         string             `json:"ownerId"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	ImageURL        string             `json:"imageUrl,omitempty"`
	Servings        int                `json:"servings,omitempty"`
	PrepTimeMinutes int                `json:"prepTimeMinutes,omitempty"`
	CookTimeMinutes int                `json:"cookTimeMinutes,omitempty"`
	Visibility      RecipeVisibility   `json:"visibility"`
	Ingredients     []RecipeIngredient `json:"ingredients"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// RecipeIngredient is one line of a recipe's ingredient list.
// Quantity is kept as entered ("200", "0.5", "a pinch") so that
// non-numeric amounts survive aggregation.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

// VisibleTo reports whether userID may see the recipe.
func (r *Recipe) VisibleTo(userID string) bool {
	return r.Visibility == VisibilityPublic || r.OwnerID == userID
}
