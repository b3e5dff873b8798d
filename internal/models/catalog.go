package models

// Allergen is a catalog entry for a substance users can flag in their profile.
// Identity is ID; names are not guaranteed unique across delete/recreate.
type Allergen struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Ingredient is a food component tagged with zero or more allergen ids.
// Ids may dangle after catalog edits; readers must skip unresolved ids.
type Ingredient struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	AllergenIDs []string `json:"allergens"`
}

// Meal embeds full ingredient snapshots taken at creation time. Later edits
// to the ingredient catalog do not rewrite existing meals; only an explicit
// ingredient deletion cascades into the snapshot.
type Meal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Clone returns a deep copy of the ingredient.
func (i Ingredient) Clone() Ingredient {
	out := i
	out.AllergenIDs = append([]string(nil), i.AllergenIDs...)
	return out
}

// Clone returns a deep copy of the meal, including its ingredient snapshot.
func (m Meal) Clone() Meal {
	out := m
	out.Ingredients = make([]Ingredient, len(m.Ingredients))
	for i, ing := range m.Ingredients {
		out.Ingredients[i] = ing.Clone()
	}
	return out
}
