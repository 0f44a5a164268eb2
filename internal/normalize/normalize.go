// Package normalize provides utilities for normalizing and sanitizing data.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

//nolint:gochecknoglobals // Shared caser, safe for concurrent use.
var foldCaser = cases.Fold()

// Ingredient normalizes an ingredient name for grouping and comparison:
// Unicode NFC composition, case folding, and whitespace collapsing.
// "  Brown  Sugar " and "brown sugar" normalize to the same key.
func Ingredient(raw string) string {
	s := norm.NFC.String(raw)
	s = foldCaser.String(s)
	return collapseWhitespace(s)
}

// Unit normalizes a unit abbreviation. Units are matched exactly apart from
// surrounding whitespace; "g" and "G" are distinct units ("G" is not a thing,
// but gram vs. gauss style collisions are the recipe author's problem).
func Unit(raw string) string {
	return strings.TrimSpace(raw)
}

// Display tidies a name for presentation without changing its case:
// Unicode NFC composition and whitespace collapsing only. Use it for
// the user-visible form of a name whose grouping key came from
// Ingredient.
func Display(raw string) string {
	return collapseWhitespace(norm.NFC.String(raw))
}

// collapseWhitespace trims the string and replaces internal whitespace runs
// with a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
