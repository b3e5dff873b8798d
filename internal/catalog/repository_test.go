package catalog

import (
	"testing"

	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *Repository {
	return NewRepository(kvstore.NewMemory())
}

func TestSeedsWhenStoreEmpty(t *testing.T) {
	r := newTestRepo()
	assert.Len(t, r.Allergens(), 10)
	assert.Len(t, r.Ingredients(), 20)
	assert.Len(t, r.Meals(), 8)
}

func TestCatalogsPersistAcrossRepositories(t *testing.T) {
	store := kvstore.NewMemory()

	r1 := NewRepository(store)
	added := r1.AddAllergen(models.Allergen{Name: "Mustard", Category: "Seeds"})
	require.NotEmpty(t, added.ID)

	r2 := NewRepository(store)
	assert.Len(t, r2.Allergens(), 11)
	assert.Equal(t, "Mustard", r2.Allergens()[0].Name)
}

func TestDeleteAllergenCascadesIntoIngredients(t *testing.T) {
	r := newTestRepo()

	r.DeleteAllergen("a3") // Milk

	for _, a := range r.Allergens() {
		assert.NotEqual(t, "a3", a.ID)
	}
	for _, ing := range r.Ingredients() {
		assert.NotContains(t, ing.AllergenIDs, "a3", "ingredient %s still references deleted allergen", ing.ID)
	}
}

func TestDeleteIngredientCascadesIntoMeals(t *testing.T) {
	r := newTestRepo()

	r.DeleteIngredient("i3") // Parmesan Cheese, used by m1, m4 and m7

	for _, ing := range r.Ingredients() {
		assert.NotEqual(t, "i3", ing.ID)
	}
	for _, m := range r.Meals() {
		for _, ing := range m.Ingredients {
			assert.NotEqual(t, "i3", ing.ID, "meal %s still embeds deleted ingredient", m.ID)
		}
	}
}

func TestMealSnapshotsAreStale(t *testing.T) {
	r := newTestRepo()

	// Editing the ingredient catalog must not rewrite existing meals.
	r.DeleteAllergen("a6") // Wheat: cascades into live ingredients only

	for _, ing := range r.Ingredients() {
		assert.NotContains(t, ing.AllergenIDs, "a6")
	}

	m, ok := r.FindMeal("m1") // Caesar Salad embeds croutons with a6
	require.True(t, ok)
	var croutons *models.Ingredient
	for i := range m.Ingredients {
		if m.Ingredients[i].ID == "i5" {
			croutons = &m.Ingredients[i]
		}
	}
	require.NotNil(t, croutons)
	assert.Contains(t, croutons.AllergenIDs, "a6", "embedded snapshot must keep its original allergen ids")
}

func TestAddMealEmbedsSnapshotByValue(t *testing.T) {
	r := newTestRepo()

	meal := r.AddMeal("Toast", "Buttered toast", "", []string{"i19", "i20", "nope"})
	require.Len(t, meal.Ingredients, 2, "unknown ingredient ids are skipped")

	// A later ingredient deletion cascades, but a plain edit does not reach
	// the snapshot: deleting the allergen behind i19 leaves the meal's copy.
	r.DeleteAllergen("a3")
	got, ok := r.FindMeal(meal.ID)
	require.True(t, ok)
	assert.Contains(t, got.Ingredients[0].AllergenIDs, "a3")
}

func TestDeleteMeal(t *testing.T) {
	r := newTestRepo()
	r.DeleteMeal("m5")

	_, ok := r.FindMeal("m5")
	assert.False(t, ok)
	assert.Len(t, r.Meals(), 7)
}

func TestSetMealImage(t *testing.T) {
	r := newTestRepo()

	assert.True(t, r.SetMealImage("m1", "https://img.example/m1.png"))
	m, _ := r.FindMeal("m1")
	assert.Equal(t, "https://img.example/m1.png", m.Image)

	assert.False(t, r.SetMealImage("missing", "x"))
}

func TestReadsReturnCopies(t *testing.T) {
	r := newTestRepo()

	meals := r.Meals()
	meals[0].Ingredients[0].AllergenIDs = append(meals[0].Ingredients[0].AllergenIDs, "a1")
	meals[0].Name = "mutated"

	fresh, _ := r.FindMeal(meals[0].ID)
	assert.NotEqual(t, "mutated", fresh.Name)
}
