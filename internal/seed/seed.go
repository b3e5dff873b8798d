// Package seed provides the default catalogs used when no durable record
// exists yet. Meals embed ingredient snapshots by value at construction time.
package seed

import (
	"time"

	"github.com/allersafe/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Allergens returns the default allergen catalog.
func Allergens() []models.Allergen {
	return []models.Allergen{
		{ID: "a1", Name: "Peanuts", Category: "Nuts", Description: "Common legume allergy"},
		{ID: "a2", Name: "Tree Nuts", Category: "Nuts", Description: "Includes almonds, walnuts, cashews"},
		{ID: "a3", Name: "Milk", Category: "Dairy", Description: "Lactose and dairy proteins"},
		{ID: "a4", Name: "Eggs", Category: "Animal Products", Description: "Chicken eggs"},
		{ID: "a5", Name: "Soy", Category: "Legumes", Description: "Soybeans and soy products"},
		{ID: "a6", Name: "Wheat", Category: "Grains", Description: "Contains gluten"},
		{ID: "a7", Name: "Fish", Category: "Seafood", Description: "Finned fish"},
		{ID: "a8", Name: "Shellfish", Category: "Seafood", Description: "Crustaceans and mollusks"},
		{ID: "a9", Name: "Sesame", Category: "Seeds", Description: "Sesame seeds and oil"},
		{ID: "a10", Name: "Gluten", Category: "Grains", Description: "Found in wheat, barley, rye"},
	}
}

// Ingredients returns the default ingredient catalog.
func Ingredients() []models.Ingredient {
	return []models.Ingredient{
		{ID: "i1", Name: "Chicken Breast", Category: "Meat", AllergenIDs: []string{}},
		{ID: "i2", Name: "Lettuce", Category: "Vegetables", AllergenIDs: []string{}},
		{ID: "i3", Name: "Parmesan Cheese", Category: "Dairy", AllergenIDs: []string{"a3"}},
		{ID: "i4", Name: "Caesar Dressing", Category: "Condiments", AllergenIDs: []string{"a3", "a4", "a7"}},
		{ID: "i5", Name: "Croutons", Category: "Bread", AllergenIDs: []string{"a6", "a10"}},
		{ID: "i6", Name: "Salmon", Category: "Seafood", AllergenIDs: []string{"a7"}},
		{ID: "i7", Name: "Rice", Category: "Grains", AllergenIDs: []string{}},
		{ID: "i8", Name: "Avocado", Category: "Vegetables", AllergenIDs: []string{}},
		{ID: "i9", Name: "Soy Sauce", Category: "Condiments", AllergenIDs: []string{"a5", "a6"}},
		{ID: "i10", Name: "Sesame Seeds", Category: "Seeds", AllergenIDs: []string{"a9"}},
		{ID: "i11", Name: "Peanut Butter", Category: "Spreads", AllergenIDs: []string{"a1"}},
		{ID: "i12", Name: "Almond Milk", Category: "Dairy Alternatives", AllergenIDs: []string{"a2"}},
		{ID: "i13", Name: "Shrimp", Category: "Seafood", AllergenIDs: []string{"a8"}},
		{ID: "i14", Name: "Pasta", Category: "Grains", AllergenIDs: []string{"a6", "a10"}},
		{ID: "i15", Name: "Tomatoes", Category: "Vegetables", AllergenIDs: []string{}},
		{ID: "i16", Name: "Mozzarella", Category: "Dairy", AllergenIDs: []string{"a3"}},
		{ID: "i17", Name: "Basil", Category: "Herbs", AllergenIDs: []string{}},
		{ID: "i18", Name: "Eggs", Category: "Animal Products", AllergenIDs: []string{"a4"}},
		{ID: "i19", Name: "Butter", Category: "Dairy", AllergenIDs: []string{"a3"}},
		{ID: "i20", Name: "Flour", Category: "Grains", AllergenIDs: []string{"a6", "a10"}},
	}
}

// Meals returns the default meal catalog. Each meal's ingredient list is a
// copy of the seed ingredients taken here, not a reference into the live
// ingredient catalog.
func Meals() []models.Meal {
	byID := make(map[string]models.Ingredient)
	for _, ing := range Ingredients() {
		byID[ing.ID] = ing
	}
	pick := func(ids ...string) []models.Ingredient {
		out := make([]models.Ingredient, 0, len(ids))
		for _, id := range ids {
			out = append(out, byID[id].Clone())
		}
		return out
	}

	return []models.Meal{
		{
			ID:          "m1",
			Name:        "Caesar Salad",
			Description: "Classic Caesar salad with grilled chicken, romaine lettuce, and parmesan",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&q=80",
			Ingredients: pick("i1", "i2", "i3", "i4", "i5"),
		},
		{
			ID:          "m2",
			Name:        "Salmon Poke Bowl",
			Description: "Fresh salmon with rice, avocado, and sesame seeds",
			Image:       "https://images.unsplash.com/photo-1546069901-d5bfd2cbfb1f?w=800&q=80",
			Ingredients: pick("i6", "i7", "i8", "i9", "i10"),
		},
		{
			ID:          "m3",
			Name:        "Thai Peanut Noodles",
			Description: "Rice noodles tossed in creamy peanut sauce",
			Image:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800&q=80",
			Ingredients: pick("i7", "i11", "i9", "i10"),
		},
		{
			ID:          "m4",
			Name:        "Shrimp Pasta",
			Description: "Creamy garlic pasta with grilled shrimp",
			Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=800&q=80",
			Ingredients: pick("i13", "i14", "i3", "i19"),
		},
		{
			ID:          "m5",
			Name:        "Margherita Pizza",
			Description: "Traditional pizza with tomato, mozzarella, and fresh basil",
			Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800&q=80",
			Ingredients: pick("i20", "i15", "i16", "i17"),
		},
		{
			ID:          "m6",
			Name:        "Vegan Buddha Bowl",
			Description: "Healthy bowl with rice, vegetables, and tahini dressing",
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&q=80",
			Ingredients: pick("i7", "i8", "i2", "i15"),
		},
		{
			ID:          "m7",
			Name:        "Breakfast Scramble",
			Description: "Fluffy scrambled eggs with cheese and butter",
			Image:       "https://images.unsplash.com/photo-1525351484163-7529414344d8?w=800&q=80",
			Ingredients: pick("i18", "i19", "i3"),
		},
		{
			ID:          "m8",
			Name:        "Grilled Chicken & Rice",
			Description: "Simple and healthy grilled chicken breast with steamed rice",
			Image:       "https://images.unsplash.com/photo-1598103442097-8b74394b95c6?w=800&q=80",
			Ingredients: pick("i1", "i7"),
		},
	}
}

// Users returns the default user list: a single admin account with the
// password "admin123". Deployments are expected to change it.
func Users() []models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	return []models.User{
		{
			ID:           "admin-default",
			Name:         "AllerSafe Admin",
			Email:        "admin@allersafe.com",
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
			Phone:        "",
			CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// DietaryPreferences returns the selectable preference tags. Informational
// only; no matching logic consumes them.
func DietaryPreferences() []string {
	return []string{"vegetarian", "vegan", "halal", "kosher", "low-carb"}
}
