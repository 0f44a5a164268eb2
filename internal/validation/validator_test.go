package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/mealboardapp/mealboard-server/internal/errors"
)

type scheduleRequest struct {
	RecipeID string `json:"recipeId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(scheduleRequest{RecipeID: "recipe-abc123", Date: "2026-09-01"})
	assert.NoError(t, err)
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(scheduleRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["recipeId"])
	assert.Contains(t, details, "date")
}

func TestValidateFriendlyMessages(t *testing.T) {
	type form struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"min=2"`
		Date  string `json:"date" validate:"datetime=2006-01-02"`
	}

	v := New()
	err := v.Validate(form{Email: "nope", Name: "x", Date: "July 4th"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)
	assert.Equal(t, "must be a valid email address", details["email"])
	assert.Equal(t, "must be at least 2 characters", details["name"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", details["date"])
}
