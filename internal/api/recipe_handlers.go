package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mealboardapp/mealboard-server/internal/domain"
)

func (s *Server) registerRecipeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listRecipes",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes",
		Summary:     "List recipes",
		Description: "Returns all recipes visible to the current user",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListRecipes)

	huma.Register(s.api, huma.Operation{
		OperationID: "createRecipe",
		Method:      http.MethodPost,
		Path:        "/api/v1/recipes",
		Summary:     "Create recipe",
		Description: "Creates a new recipe owned by the current user",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "getRecipe",
		Method:      http.MethodGet,
		Path:        "/api/v1/recipes/{id}",
		Summary:     "Get recipe",
		Description: "Returns a recipe by ID",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "setRecipeFavorite",
		Method:      http.MethodPut,
		Path:        "/api/v1/recipes/{id}/favorite",
		Summary:     "Set favorite",
		Description: "Marks or unmarks a recipe as a favorite",
		Tags:        []string{"Recipes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleSetRecipeFavorite)
}

// === DTOs ===

// IngredientDTO is one ingredient line in API requests and responses.
type IngredientDTO struct {
	Name     string `json:"name" validate:"required,min=1,max=200" doc:"Ingredient name"`
	Quantity string `json:"quantity,omitempty" validate:"max=50" doc:"Amount as entered, numeric or free text"`
	Unit     string `json:"unit,omitempty" validate:"max=30" doc:"Unit of measure"`
}

// RecipeResponse contains recipe data in API responses.
type RecipeResponse struct {
	ID              string          `json:"id" doc:"Recipe ID"`
	OwnerID         string          `json:"ownerId" doc:"Owning user ID"`
	Title           string          `json:"title" doc:"Recipe title"`
	Description     string          `json:"description,omitempty" doc:"Recipe description"`
	ImageURL        string          `json:"imageUrl,omitempty" doc:"Recipe image URL"`
	Servings        int             `json:"servings,omitempty" doc:"Number of servings"`
	PrepTimeMinutes int             `json:"prepTimeMinutes,omitempty" doc:"Preparation time in minutes"`
	CookTimeMinutes int             `json:"cookTimeMinutes,omitempty" doc:"Cooking time in minutes"`
	Visibility      string          `json:"visibility" doc:"public or private"`
	Ingredients     []IngredientDTO `json:"ingredients" doc:"Ingredient lines"`
	IsFavorite      bool            `json:"isFavorite" doc:"Whether the current user favorited this recipe"`
	CreatedAt       time.Time       `json:"createdAt" doc:"Creation time"`
	UpdatedAt       time.Time       `json:"updatedAt" doc:"Last update time"`
}

// ListRecipesInput contains parameters for listing recipes.
type ListRecipesInput struct {
	Authorization string `header:"Authorization"`
}

// ListRecipesResponse contains a list of recipes.
type ListRecipesResponse struct {
	Recipes []RecipeResponse `json:"recipes" doc:"Visible recipes, newest first"`
}

// ListRecipesOutput wraps the list recipes response for Huma.
type ListRecipesOutput struct {
	Body ListRecipesResponse
}

// CreateRecipeRequest is the request body for creating a recipe.
type CreateRecipeRequest struct {
	Title           string          `json:"title" validate:"required,min=1,max=200" doc:"Recipe title"`
	Description     string          `json:"description,omitempty" validate:"max=2000" doc:"Recipe description"`
	ImageURL        string          `json:"imageUrl,omitempty" validate:"omitempty,url,max=500" doc:"Recipe image URL"`
	Servings        int             `json:"servings,omitempty" validate:"gte=0,lte=100" doc:"Number of servings"`
	PrepTimeMinutes int             `json:"prepTimeMinutes,omitempty" validate:"gte=0,lte=1440" doc:"Preparation time in minutes"`
	CookTimeMinutes int             `json:"cookTimeMinutes,omitempty" validate:"gte=0,lte=1440" doc:"Cooking time in minutes"`
	Visibility      string          `json:"visibility,omitempty" validate:"omitempty,oneof=public private" doc:"public or private"`
	Ingredients     []IngredientDTO `json:"ingredients,omitempty" validate:"dive" doc:"Ingredient lines"`
}

// CreateRecipeInput wraps the create recipe request for Huma.
type CreateRecipeInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateRecipeRequest
}

// RecipeOutput wraps the recipe response for Huma.
type RecipeOutput struct {
	Body RecipeResponse
}

// GetRecipeInput contains parameters for getting a recipe.
type GetRecipeInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Recipe ID"`
}

// SetFavoriteRequest is the request body for setting a favorite flag.
type SetFavoriteRequest struct {
	Favorite bool `json:"favorite" doc:"Desired favorite state"`
}

// SetFavoriteInput wraps the set favorite request for Huma.
type SetFavoriteInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Recipe ID"`
	Body          SetFavoriteRequest
}

func toRecipeResponse(r *domain.Recipe, isFavorite bool) RecipeResponse {
	ingredients := make([]IngredientDTO, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = IngredientDTO{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit}
	}
	return RecipeResponse{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Servings:        r.Servings,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Visibility:      string(r.Visibility),
		Ingredients:     ingredients,
		IsFavorite:      isFavorite,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// === Handlers ===

func (s *Server) handleListRecipes(ctx context.Context, input *ListRecipesInput) (*ListRecipesOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	recipes, err := s.services.Recipe.ListRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]RecipeResponse, len(recipes))
	for i, r := range recipes {
		resp[i] = toRecipeResponse(r.Recipe, r.IsFavorite)
	}
	return &ListRecipesOutput{Body: ListRecipesResponse{Recipes: resp}}, nil
}

func (s *Server) handleCreateRecipe(ctx context.Context, input *CreateRecipeInput) (*RecipeOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	ingredients := make([]domain.RecipeIngredient, len(input.Body.Ingredients))
	for i, ing := range input.Body.Ingredients {
		ingredients[i] = domain.RecipeIngredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit}
	}

	recipe, err := s.services.Recipe.CreateRecipe(ctx, userID, &domain.Recipe{
		Title:           input.Body.Title,
		Description:     input.Body.Description,
		ImageURL:        input.Body.ImageURL,
		Servings:        input.Body.Servings,
		PrepTimeMinutes: input.Body.PrepTimeMinutes,
		CookTimeMinutes: input.Body.CookTimeMinutes,
		Visibility:      domain.RecipeVisibility(input.Body.Visibility),
		Ingredients:     ingredients,
	})
	if err != nil {
		return nil, err
	}

	return &RecipeOutput{Body: toRecipeResponse(recipe, false)}, nil
}

func (s *Server) handleGetRecipe(ctx context.Context, input *GetRecipeInput) (*RecipeOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	recipe, err := s.services.Recipe.GetRecipe(ctx, userID, input.ID)
	if err != nil {
		return nil, err
	}

	return &RecipeOutput{Body: toRecipeResponse(recipe.Recipe, recipe.IsFavorite)}, nil
}

func (s *Server) handleSetRecipeFavorite(ctx context.Context, input *SetFavoriteInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Recipe.SetFavorite(ctx, userID, input.ID, input.Body.Favorite); err != nil {
		return nil, err
	}

	msg := "Recipe removed from favorites"
	if input.Body.Favorite {
		msg = "Recipe added to favorites"
	}
	return &MessageOutput{Body: MessageResponse{Message: msg}}, nil
}
