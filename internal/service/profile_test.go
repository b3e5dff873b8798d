package service

import (
	"testing"

	"github.com/allersafe/backend/internal/kvstore"
	"github.com/allersafe/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sev(s models.Severity) *models.Severity {
	return &s
}

func TestToggleFavoriteIsIdempotentPairwise(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())

	s.ToggleFavorite("u1", "m2")
	before := s.State("u1").Favorites

	s.ToggleFavorite("u1", "m1")
	s.ToggleFavorite("u1", "m1")

	assert.Equal(t, before, s.State("u1").Favorites, "double toggle is a no-op overall")
}

func TestToggleFavoriteUnknownMeal(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())
	s.ToggleFavorite("u1", "no-such-meal")
	assert.True(t, s.IsFavorite("u1", "no-such-meal"), "favorites are decoupled from catalog existence")
}

func TestAllergenSeverityUpsert(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())

	s.SetAllergenSeverity("u1", "a3", sev(models.SeverityMild))
	st := s.SetAllergenSeverity("u1", "a3", sev(models.SeveritySevere))

	require.Len(t, st.AllergenProfile, 1, "setting twice leaves exactly one entry")
	assert.Equal(t, "a3", st.AllergenProfile[0].AllergenID)
	assert.Equal(t, models.SeveritySevere, st.AllergenProfile[0].Severity)
}

func TestAllergenSeverityRemoval(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())

	s.SetAllergenSeverity("u1", "a3", sev(models.SeverityModerate))
	s.SetAllergenSeverity("u1", "a6", sev(models.SeverityMild))
	st := s.SetAllergenSeverity("u1", "a3", nil)

	require.Len(t, st.AllergenProfile, 1)
	assert.Equal(t, "a6", st.AllergenProfile[0].AllergenID)
}

func TestSubmitRatingReplacesPriorEntry(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())

	first := s.SubmitRating("u1", "m1", 3, "fine")
	second := s.SubmitRating("u1", "m1", 5, "actually great")

	got, ok := s.GetRating("u1", "m1")
	require.True(t, ok)
	assert.Equal(t, 5, got.Value)
	assert.Equal(t, "actually great", got.Review)
	assert.False(t, got.CreatedAt.Before(first.CreatedAt))
	assert.Equal(t, second.CreatedAt, got.CreatedAt)

	assert.Len(t, s.State("u1").Ratings, 1)
}

func TestGetRatingAbsent(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())
	_, ok := s.GetRating("u1", "m1")
	assert.False(t, ok)
}

func TestToggleDietaryPreference(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())

	s.ToggleDietaryPreference("u1", "vegan")
	assert.Equal(t, []string{"vegan"}, s.State("u1").DietaryPreferences)

	s.ToggleDietaryPreference("u1", "vegan")
	assert.Empty(t, s.State("u1").DietaryPreferences)
}

func TestUserStatePersistsAcrossServices(t *testing.T) {
	store := kvstore.NewMemory()

	s1 := NewProfileService(store)
	s1.SetAllergenSeverity("u1", "a3", sev(models.SeveritySevere))
	s1.ToggleFavorite("u1", "m1")

	s2 := NewProfileService(store)
	st := s2.State("u1")
	require.Len(t, st.AllergenProfile, 1)
	assert.Equal(t, models.SeveritySevere, st.AllergenProfile[0].Severity)
	assert.Equal(t, []string{"m1"}, st.Favorites)
}

func TestUsersAreIsolated(t *testing.T) {
	s := NewProfileService(kvstore.NewMemory())
	s.ToggleFavorite("u1", "m1")
	assert.Empty(t, s.State("u2").Favorites)
}
