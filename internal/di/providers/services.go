package providers

import (
	"github.com/samber/do/v2"

	"github.com/mealboardapp/mealboard-server/internal/auth"
	"github.com/mealboardapp/mealboard-server/internal/logger"
	"github.com/mealboardapp/mealboard-server/internal/service"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokens, log.Logger), nil
}

// ProvideRecipeService provides the recipe directory service.
func ProvideRecipeService(i do.Injector) (*service.RecipeService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecipeService(storeHandle.Store, storeHandle.Store, log.Logger), nil
}

// ProvideCalendarService provides the meal calendar service.
func ProvideCalendarService(i do.Injector) (*service.CalendarService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCalendarService(storeHandle.Store, storeHandle.Store, log.Logger), nil
}
