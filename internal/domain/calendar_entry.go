package domain

import "time"

// CalendarEntry schedules a recipe on a user's calendar for a single
// day. At most one entry exists per (user, recipe, date) triple. The
// triple is the entry's full semantic content, so entries never change
// after insert and UpdatedAt always equals CreatedAt.
type CalendarEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	RecipeID  string    `json:"recipeId"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
