package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allersafe/backend/internal/seed"
	"github.com/allersafe/backend/internal/service"
)

// ProfileHandler serves the caller's own allergen profile and preferences.
type ProfileHandler struct {
	auth     *service.AuthService
	profiles *service.ProfileService
}

func NewProfileHandler(auth *service.AuthService, profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{auth: auth, profiles: profiles}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	resp := gin.H{
		"state":             h.profiles.State(userID),
		"preferenceOptions": seed.DietaryPreferences(),
	}
	if user, ok := h.auth.FindUser(userID); ok {
		resp["user"] = user.Public()
	}

	c.JSON(http.StatusOK, resp)
}

// SetAllergenSeverity upserts the severity for one allergen; a null severity
// in the body removes the entry.
func (h *ProfileHandler) SetAllergenSeverity(c *gin.Context) {
	userID := c.GetString("user_id")
	allergenID := c.Param("id")

	var req SeverityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Severity != nil && !req.Severity.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "severity must be mild, moderate or severe"})
		return
	}

	st := h.profiles.SetAllergenSeverity(userID, allergenID, req.Severity)
	c.JSON(http.StatusOK, gin.H{"state": st})
}

// TogglePreference flips one dietary preference tag.
func (h *ProfileHandler) TogglePreference(c *gin.Context) {
	userID := c.GetString("user_id")
	st := h.profiles.ToggleDietaryPreference(userID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"state": st})
}
