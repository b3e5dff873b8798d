package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allersafe/backend/internal/catalog"
	"github.com/allersafe/backend/internal/matching"
	"github.com/allersafe/backend/internal/models"
	"github.com/allersafe/backend/internal/service"
)

// MealHandler serves meal browsing, allergen warnings, favorites and ratings.
type MealHandler struct {
	repo     *catalog.Repository
	profiles *service.ProfileService
}

func NewMealHandler(repo *catalog.Repository, profiles *service.ProfileService) *MealHandler {
	return &MealHandler{repo: repo, profiles: profiles}
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	meals := h.repo.Meals()

	if q := strings.ToLower(c.Query("q")); q != "" {
		filtered := meals[:0:0]
		for _, m := range meals {
			if strings.Contains(strings.ToLower(m.Name), q) ||
				strings.Contains(strings.ToLower(m.Description), q) {
				filtered = append(filtered, m)
			}
		}
		meals = filtered
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	meal, ok := h.repo.FindMeal(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

// MealWarnings crosses the meal's embedded ingredient snapshot with the
// caller's allergen profile and returns warnings plus substitution hints.
func (h *MealHandler) MealWarnings(c *gin.Context) {
	meal, ok := h.repo.FindMeal(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}

	profile := h.profiles.State(c.GetString("user_id")).AllergenProfile
	result := matching.MatchMeal(meal, profile, h.repo.Allergens())

	c.JSON(http.StatusOK, gin.H{
		"warnings":    result.Warnings,
		"overall":     result.Overall,
		"suggestions": matching.SuggestSubstitutions(result),
	})
}

// ToggleFavorite flips the meal in the caller's favorite set. The meal is not
// required to exist in the catalog.
func (h *MealHandler) ToggleFavorite(c *gin.Context) {
	st := h.profiles.ToggleFavorite(c.GetString("user_id"), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"favorites": st.Favorites})
}

// ListFavorites resolves the caller's favorite ids against the catalog.
// Favorites whose meal has since disappeared are omitted.
func (h *MealHandler) ListFavorites(c *gin.Context) {
	st := h.profiles.State(c.GetString("user_id"))

	meals := make([]models.Meal, 0, len(st.Favorites))
	for _, id := range st.Favorites {
		if meal, ok := h.repo.FindMeal(id); ok {
			meals = append(meals, meal)
		}
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *MealHandler) SubmitRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	rating := h.profiles.SubmitRating(c.GetString("user_id"), c.Param("id"), req.Rating, req.Review)
	c.JSON(http.StatusOK, rating)
}

func (h *MealHandler) GetRating(c *gin.Context) {
	rating, ok := h.profiles.GetRating(c.GetString("user_id"), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No rating for this meal"})
		return
	}
	c.JSON(http.StatusOK, rating)
}
