package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mealboardapp/mealboard-server/internal/calendar"
	"github.com/mealboardapp/mealboard-server/internal/domain"
	domainerrors "github.com/mealboardapp/mealboard-server/internal/errors"
	"github.com/mealboardapp/mealboard-server/internal/service"
)

func (s *Server) registerCalendarRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "scheduleRecipe",
		Method:        http.MethodPost,
		Path:          "/api/v1/calendar-entries",
		Summary:       "Schedule recipe",
		Description:   "Puts a recipe on the current user's calendar for a date",
		Tags:          []string{"Calendar"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
	}, s.handleScheduleRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "unscheduleRecipe",
		Method:      http.MethodDelete,
		Path:        "/api/v1/calendar-entries",
		Summary:     "Unschedule recipe",
		Description: "Removes a recipe from the current user's calendar for a date",
		Tags:        []string{"Calendar"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUnscheduleRecipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCalendarEntries",
		Method:      http.MethodGet,
		Path:        "/api/v1/calendar-entries",
		Summary:     "List calendar entries",
		Description: "Returns the current user's entries in a date range, with recipe summaries",
		Tags:        []string{"Calendar"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListCalendarEntries)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCalendarView",
		Method:      http.MethodGet,
		Path:        "/api/v1/calendar/view",
		Summary:     "Get calendar view",
		Description: "Returns day buckets for a day, week, or month view around an anchor date",
		Tags:        []string{"Calendar"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetCalendarView)

	huma.Register(s.api, huma.Operation{
		OperationID: "getShoppingList",
		Method:      http.MethodGet,
		Path:        "/api/v1/calendar/shopping-list",
		Summary:     "Get shopping list",
		Description: "Aggregates the ingredients of every recipe scheduled in a date range",
		Tags:        []string{"Calendar"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetShoppingList)
}

// === DTOs ===

// RecipeSummaryDTO is the recipe subset shown on calendar entries.
type RecipeSummaryDTO struct {
	ID              string `json:"id" doc:"Recipe ID"`
	Title           string `json:"title" doc:"Recipe title"`
	ImageURL        string `json:"imageUrl,omitempty" doc:"Recipe image URL"`
	Servings        int    `json:"servings,omitempty" doc:"Number of servings"`
	PrepTimeMinutes int    `json:"prepTimeMinutes,omitempty" doc:"Preparation time in minutes"`
	CookTimeMinutes int    `json:"cookTimeMinutes,omitempty" doc:"Cooking time in minutes"`
}

// CalendarEntryResponse is one scheduled recipe in API responses.
type CalendarEntryResponse struct {
	ID        string           `json:"id" doc:"Entry ID"`
	RecipeID  string           `json:"recipeId" doc:"Scheduled recipe ID"`
	Date      string           `json:"date" doc:"Scheduled date, YYYY-MM-DD"`
	Recipe    RecipeSummaryDTO `json:"recipe" doc:"Recipe summary"`
	CreatedAt time.Time        `json:"createdAt" doc:"Creation time"`
	UpdatedAt time.Time        `json:"updatedAt" doc:"Last update time"`
}

// ScheduleEntryRequest is the request body for scheduling a recipe.
type ScheduleEntryRequest struct {
	RecipeID string `json:"recipeId" validate:"required" doc:"Recipe to schedule"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02" doc:"Date to schedule on, YYYY-MM-DD"`
}

// ScheduleEntryInput wraps the schedule request for Huma.
type ScheduleEntryInput struct {
	Authorization string `header:"Authorization"`
	Body          ScheduleEntryRequest
}

// CalendarEntryOutput wraps a single entry response for Huma.
type CalendarEntryOutput struct {
	Body CalendarEntryResponse
}

// UnscheduleEntryRequest is the request body for unscheduling a recipe.
type UnscheduleEntryRequest struct {
	RecipeID string `json:"recipeId" validate:"required" doc:"Recipe to unschedule"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02" doc:"Date to unschedule from, YYYY-MM-DD"`
}

// UnscheduleEntryInput wraps the unschedule request for Huma.
type UnscheduleEntryInput struct {
	Authorization string `header:"Authorization"`
	Body          UnscheduleEntryRequest
}

// UnscheduleEntryResponse reports whether an entry was removed.
type UnscheduleEntryResponse struct {
	Removed bool `json:"removed" doc:"Whether an entry was removed"`
}

// UnscheduleEntryOutput wraps the unschedule response for Huma.
type UnscheduleEntryOutput struct {
	Body UnscheduleEntryResponse
}

// ListCalendarEntriesInput contains parameters for listing entries.
// Both bounds are optional; omitting them lists the whole calendar.
type ListCalendarEntriesInput struct {
	Authorization string `header:"Authorization"`
	Start         string `query:"start" doc:"Range start, YYYY-MM-DD (inclusive)"`
	End           string `query:"end" doc:"Range end, YYYY-MM-DD (inclusive)"`
}

// CalendarEntriesResponse contains a list of calendar entries.
type CalendarEntriesResponse struct {
	Entries []CalendarEntryResponse `json:"entries" doc:"Entries ordered by date"`
}

// CalendarEntriesOutput wraps the entry list response for Huma.
type CalendarEntriesOutput struct {
	Body CalendarEntriesResponse
}

// CalendarViewInput contains parameters for the calendar view.
type CalendarViewInput struct {
	Authorization string `header:"Authorization"`
	Mode          string `query:"mode" doc:"View mode: day, week, or month"`
	Anchor        string `query:"anchor" doc:"Anchor date, YYYY-MM-DD; defaults to today"`
}

// CalendarDayResponse is one day bucket of a calendar view.
type CalendarDayResponse struct {
	Date            string                  `json:"date" doc:"Day, YYYY-MM-DD"`
	Entries         []CalendarEntryResponse `json:"entries" doc:"Entries scheduled on this day"`
	IsToday         bool                    `json:"isToday" doc:"Whether this day is the server's current date"`
	IsCurrentPeriod bool                    `json:"isCurrentPeriod" doc:"False for padding days outside the anchor month"`
}

// CalendarViewResponse contains an assembled calendar view.
type CalendarViewResponse struct {
	Mode   string                `json:"mode" doc:"View mode"`
	Anchor string                `json:"anchor" doc:"Anchor date"`
	Start  string                `json:"start" doc:"First day of the view"`
	End    string                `json:"end" doc:"Last day of the view"`
	Days   []CalendarDayResponse `json:"days" doc:"Day buckets covering the view span"`
}

// CalendarViewOutput wraps the view response for Huma.
type CalendarViewOutput struct {
	Body CalendarViewResponse
}

// ShoppingListInput contains parameters for the shopping list.
type ShoppingListInput struct {
	Authorization string `header:"Authorization"`
	Date          string `query:"date" doc:"Date to aggregate, YYYY-MM-DD"`
	End           string `query:"end" doc:"Optional range end, YYYY-MM-DD; defaults to date"`
}

// ShoppingListItemDTO is one aggregated shopping list row.
type ShoppingListItemDTO struct {
	Name     string   `json:"name" doc:"Ingredient name"`
	Unit     string   `json:"unit,omitempty" doc:"Unit of measure"`
	Quantity *float64 `json:"quantity,omitempty" doc:"Summed numeric quantity"`
	Notes    []string `json:"notes,omitempty" doc:"Non-numeric amounts kept as entered"`
}

// ShoppingListResponse contains the aggregated shopping list.
type ShoppingListResponse struct {
	Start string                `json:"start" doc:"Range start"`
	End   string                `json:"end" doc:"Range end"`
	Items []ShoppingListItemDTO `json:"items" doc:"Rows sorted by ingredient name"`
}

// ShoppingListOutput wraps the shopping list response for Huma.
type ShoppingListOutput struct {
	Body ShoppingListResponse
}

func toRecipeSummaryDTO(r *domain.Recipe) RecipeSummaryDTO {
	return RecipeSummaryDTO{
		ID:              r.ID,
		Title:           r.Title,
		ImageURL:        r.ImageURL,
		Servings:        r.Servings,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
	}
}

func toCalendarEntryResponse(e *service.EntryWithRecipe) CalendarEntryResponse {
	return CalendarEntryResponse{
		ID:        e.ID,
		RecipeID:  e.RecipeID,
		Date:      e.Date.String(),
		Recipe:    toRecipeSummaryDTO(e.Recipe),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toCalendarEntryResponses(entries []*service.EntryWithRecipe) []CalendarEntryResponse {
	resp := make([]CalendarEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toCalendarEntryResponse(e)
	}
	return resp
}

// parseDateParam parses a date query or body field, reporting a
// validation error naming the field.
func parseDateParam(field, value string) (domain.Date, error) {
	date, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, domainerrors.ValidationWithDetails("Validation failed", map[string]string{
			field: "must be a date in YYYY-MM-DD format",
		})
	}
	return date, nil
}

// === Handlers ===

func (s *Server) handleScheduleRecipe(ctx context.Context, input *ScheduleEntryInput) (*CalendarEntryOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	date, err := parseDateParam("date", input.Body.Date)
	if err != nil {
		return nil, err
	}

	entry, err := s.services.Calendar.Schedule(ctx, userID, input.Body.RecipeID, date)
	if err != nil {
		return nil, err
	}

	return &CalendarEntryOutput{Body: toCalendarEntryResponse(entry)}, nil
}

func (s *Server) handleUnscheduleRecipe(ctx context.Context, input *UnscheduleEntryInput) (*UnscheduleEntryOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(input.Body); err != nil {
		return nil, err
	}

	date, err := parseDateParam("date", input.Body.Date)
	if err != nil {
		return nil, err
	}

	if err := s.services.Calendar.Unschedule(ctx, userID, input.Body.RecipeID, date); err != nil {
		return nil, err
	}

	return &UnscheduleEntryOutput{Body: UnscheduleEntryResponse{Removed: true}}, nil
}

func (s *Server) handleListCalendarEntries(ctx context.Context, input *ListCalendarEntriesInput) (*CalendarEntriesOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	// Open bounds default to the sqlite TEXT date extremes.
	start := domain.Date{Year: 1, Month: time.January, Day: 1}
	end := domain.Date{Year: 9999, Month: time.December, Day: 31}
	if input.Start != "" {
		if start, err = parseDateParam("start", input.Start); err != nil {
			return nil, err
		}
	}
	if input.End != "" {
		if end, err = parseDateParam("end", input.End); err != nil {
			return nil, err
		}
	}

	entries, err := s.services.Calendar.ListRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &CalendarEntriesOutput{Body: CalendarEntriesResponse{Entries: toCalendarEntryResponses(entries)}}, nil
}

func (s *Server) handleGetCalendarView(ctx context.Context, input *CalendarViewInput) (*CalendarViewOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	mode := calendar.ModeWeek
	if input.Mode != "" {
		if mode, err = calendar.ParseViewMode(input.Mode); err != nil {
			return nil, domainerrors.ValidationWithDetails("Validation failed", map[string]string{
				"mode": "must be one of day, week, month",
			})
		}
	}

	anchor := domain.Today()
	if input.Anchor != "" {
		if anchor, err = parseDateParam("anchor", input.Anchor); err != nil {
			return nil, err
		}
	}

	days, err := s.services.Calendar.View(ctx, userID, mode, anchor)
	if err != nil {
		return nil, err
	}

	resp := CalendarViewResponse{
		Mode:   string(mode),
		Anchor: anchor.String(),
		Days:   make([]CalendarDayResponse, len(days)),
	}
	span := calendar.SpanFor(mode, anchor)
	resp.Start = span.Start.String()
	resp.End = span.End.String()
	for i, day := range days {
		resp.Days[i] = CalendarDayResponse{
			Date:            day.Date.String(),
			Entries:         toCalendarEntryResponses(day.Entries),
			IsToday:         day.IsToday,
			IsCurrentPeriod: day.IsCurrentPeriod,
		}
	}
	return &CalendarViewOutput{Body: resp}, nil
}

func (s *Server) handleGetShoppingList(ctx context.Context, input *ShoppingListInput) (*ShoppingListOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	start := domain.Today()
	if input.Date != "" {
		if start, err = parseDateParam("date", input.Date); err != nil {
			return nil, err
		}
	}
	end := start
	if input.End != "" {
		if end, err = parseDateParam("end", input.End); err != nil {
			return nil, err
		}
	}

	items, err := s.services.Calendar.ShoppingList(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	resp := ShoppingListResponse{
		Start: start.String(),
		End:   end.String(),
		Items: make([]ShoppingListItemDTO, len(items)),
	}
	for i, item := range items {
		resp.Items[i] = ShoppingListItemDTO{
			Name:     item.Name,
			Unit:     item.Unit,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		}
	}
	return &ShoppingListOutput{Body: resp}, nil
}
