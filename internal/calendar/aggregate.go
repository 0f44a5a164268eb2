package calendar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mealboardapp/mealboard-server/internal/domain"
	"github.com/mealboardapp/mealboard-server/internal/normalize"
)

// AggregatedIngredient is one shopping list line produced by combining
// the ingredient lists of every recipe scheduled in a span.
//
// Numeric quantities for the same normalized (name, unit) pair are
// summed into Quantity. Amounts that don't parse as numbers ("a
// pinch", "to taste") are carried through verbatim in Notes so they
// are never silently dropped.
type AggregatedIngredient struct {
	Name     string   `json:"name"`
	Unit     string   `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

type aggKey struct {
	name string
	unit string
}

// Aggregate combines the ingredient lists of recipes into a shopping
// list. Ingredient names are case-folded and whitespace-collapsed for
// grouping only; each row displays the name as it first appeared, so
// "Brown Sugar" and "brown sugar" merge into one line shown as
// "Brown Sugar". Units are compared exactly after trimming, so "g"
// and "kg" stay separate lines.
func Aggregate(recipes []*domain.Recipe) []AggregatedIngredient {
	byKey := make(map[aggKey]*AggregatedIngredient)
	order := make([]aggKey, 0)

	for _, r := range recipes {
		if r == nil {
			continue
		}
		for _, ing := range r.Ingredients {
			name := normalize.Ingredient(ing.Name)
			if name == "" {
				continue
			}
			key := aggKey{name: name, unit: normalize.Unit(ing.Unit)}

			agg, ok := byKey[key]
			if !ok {
				agg = &AggregatedIngredient{Name: normalize.Display(ing.Name), Unit: key.unit}
				byKey[key] = agg
				order = append(order, key)
			}

			qty := strings.TrimSpace(ing.Quantity)
			if qty == "" {
				continue
			}
			if n, err := strconv.ParseFloat(qty, 64); err == nil {
				if agg.Quantity == nil {
					agg.Quantity = new(float64)
				}
				*agg.Quantity += n
			} else {
				agg.Notes = append(agg.Notes, qty)
			}
		}
	}

	// Sort on the folded key, not the display name, so the order does
	// not depend on which spelling happened to appear first.
	sort.Slice(order, func(i, j int) bool {
		if order[i].name != order[j].name {
			return order[i].name < order[j].name
		}
		return order[i].unit < order[j].unit
	})

	out := make([]AggregatedIngredient, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}
