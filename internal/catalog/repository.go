// Package catalog holds the process-wide food database: allergens,
// ingredients and meals, each persisted independently through one durable
// keyed value. Consumers needing live data must hold a *Repository; there are
// no package-level globals.
package catalog

import (
	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/models"
	"github.com/allersafe/backend/internal/seed"
	"github.com/allersafe/backend/internal/state"
	"github.com/google/uuid"
)

const (
	allergensKey   = "allersafe:allergens"
	ingredientsKey = "allersafe:ingredients"
	mealsKey       = "allersafe:meals"
)

// Repository wraps the three catalog collections. Reads return copies;
// mutations go through the durable values so every change writes through.
type Repository struct {
	allergens   *state.Value[[]models.Allergen]
	ingredients *state.Value[[]models.Ingredient]
	meals       *state.Value[[]models.Meal]
}

// NewRepository loads the catalogs from the store, seeding defaults for any
// collection without a durable record.
func NewRepository(store kvstore.Store) *Repository {
	return &Repository{
		allergens:   state.New(store, allergensKey, seed.Allergens),
		ingredients: state.New(store, ingredientsKey, seed.Ingredients),
		meals:       state.New(store, mealsKey, seed.Meals),
	}
}

// Allergens returns a copy of the allergen catalog.
func (r *Repository) Allergens() []models.Allergen {
	return append([]models.Allergen(nil), r.allergens.Get()...)
}

// Ingredients returns a deep copy of the ingredient catalog.
func (r *Repository) Ingredients() []models.Ingredient {
	cur := r.ingredients.Get()
	out := make([]models.Ingredient, len(cur))
	for i, ing := range cur {
		out[i] = ing.Clone()
	}
	return out
}

// Meals returns a deep copy of the meal catalog.
func (r *Repository) Meals() []models.Meal {
	cur := r.meals.Get()
	out := make([]models.Meal, len(cur))
	for i, m := range cur {
		out[i] = m.Clone()
	}
	return out
}

// FindMeal looks up one meal by id.
func (r *Repository) FindMeal(id string) (models.Meal, bool) {
	for _, m := range r.meals.Get() {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return models.Meal{}, false
}

// AddAllergen stores a new allergen, assigning an id when absent, and returns
// the stored record.
func (r *Repository) AddAllergen(a models.Allergen) models.Allergen {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.allergens.Update(func(cur []models.Allergen) []models.Allergen {
		return append([]models.Allergen{a}, cur...)
	})
	return a
}

// DeleteAllergen removes the allergen and cascades the id out of every
// ingredient's allergen set. Meal snapshots keep the id; the matching engine
// skips ids it cannot resolve.
func (r *Repository) DeleteAllergen(id string) {
	r.allergens.Update(func(cur []models.Allergen) []models.Allergen {
		out := cur[:0:0]
		for _, a := range cur {
			if a.ID != id {
				out = append(out, a)
			}
		}
		return out
	})
	r.ingredients.Update(func(cur []models.Ingredient) []models.Ingredient {
		out := make([]models.Ingredient, len(cur))
		for i, ing := range cur {
			next := ing.Clone()
			next.AllergenIDs = removeString(next.AllergenIDs, id)
			out[i] = next
		}
		return out
	})
}

// AddIngredient stores a new ingredient, assigning an id when absent.
// Existing meals are untouched: their snapshots only change on ingredient
// deletion.
func (r *Repository) AddIngredient(ing models.Ingredient) models.Ingredient {
	if ing.ID == "" {
		ing.ID = uuid.NewString()
	}
	if ing.AllergenIDs == nil {
		ing.AllergenIDs = []string{}
	}
	r.ingredients.Update(func(cur []models.Ingredient) []models.Ingredient {
		return append([]models.Ingredient{ing.Clone()}, cur...)
	})
	return ing
}

// DeleteIngredient removes the ingredient and cascades it out of every meal's
// embedded snapshot.
func (r *Repository) DeleteIngredient(id string) {
	r.ingredients.Update(func(cur []models.Ingredient) []models.Ingredient {
		out := cur[:0:0]
		for _, ing := range cur {
			if ing.ID != id {
				out = append(out, ing)
			}
		}
		return out
	})
	r.meals.Update(func(cur []models.Meal) []models.Meal {
		out := make([]models.Meal, len(cur))
		for i, m := range cur {
			next := m.Clone()
			kept := next.Ingredients[:0:0]
			for _, ing := range next.Ingredients {
				if ing.ID != id {
					kept = append(kept, ing)
				}
			}
			next.Ingredients = kept
			out[i] = next
		}
		return out
	})
}

// AddMeal builds a meal from the current ingredient catalog, embedding
// snapshot copies of the referenced ingredients. Unknown ids are skipped.
func (r *Repository) AddMeal(name, description, image string, ingredientIDs []string) models.Meal {
	byID := make(map[string]models.Ingredient)
	for _, ing := range r.ingredients.Get() {
		byID[ing.ID] = ing
	}

	snapshot := make([]models.Ingredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		if ing, ok := byID[id]; ok {
			snapshot = append(snapshot, ing.Clone())
		}
	}

	meal := models.Meal{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Image:       image,
		Ingredients: snapshot,
	}
	r.meals.Update(func(cur []models.Meal) []models.Meal {
		return append([]models.Meal{meal}, cur...)
	})
	return meal
}

// DeleteMeal removes one meal by id.
func (r *Repository) DeleteMeal(id string) {
	r.meals.Update(func(cur []models.Meal) []models.Meal {
		out := cur[:0:0]
		for _, m := range cur {
			if m.ID != id {
				out = append(out, m)
			}
		}
		return out
	})
}

// SetMealImage updates the image URL of one meal. Reports whether the meal
// exists.
func (r *Repository) SetMealImage(id, url string) bool {
	found := false
	r.meals.Update(func(cur []models.Meal) []models.Meal {
		out := make([]models.Meal, len(cur))
		for i, m := range cur {
			if m.ID == id {
				m = m.Clone()
				m.Image = url
				found = true
			}
			out[i] = m
		}
		return out
	})
	return found
}

func removeString(s []string, drop string) []string {
	out := s[:0:0]
	for _, v := range s {
		if v != drop {
			out = append(out, v)
		}
	}
	return out
}
