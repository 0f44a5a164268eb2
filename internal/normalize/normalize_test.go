package normalize

import "testing"

func TestIngredient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "flour", "flour"},
		{"case folded", "Brown Sugar", "brown sugar"},
		{"surrounding whitespace", "  olive oil ", "olive oil"},
		{"internal whitespace collapsed", "olive   oil", "olive oil"},
		{"unicode folding", "Crème Fraîche", "crème fraîche"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ingredient(tt.in); got != tt.want {
				t.Errorf("Ingredient(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIngredient_EquivalentInputsShareKey(t *testing.T) {
	a := Ingredient("  Brown  Sugar ")
	b := Ingredient("brown sugar")
	if a != b {
		t.Errorf("expected equal keys, got %q and %q", a, b)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"case preserved", "Brown Sugar", "Brown Sugar"},
		{"whitespace collapsed", "  Crème   Fraîche ", "Crème Fraîche"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.in); got != tt.want {
				t.Errorf("Display(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnit(t *testing.T) {
	if got := Unit(" g "); got != "g" {
		t.Errorf("Unit: got %q, want %q", got, "g")
	}
	// Units are case sensitive by design.
	if Unit("G") == Unit("g") {
		t.Error("expected case-sensitive units")
	}
}
