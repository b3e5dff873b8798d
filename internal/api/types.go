package api

import "github.com/allersafe/backend/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// SeverityRequest carries the user's severity for one allergen. A null
// severity removes the profile entry.
type SeverityRequest struct {
	Severity *models.Severity `json:"severity"`
}

type RatingRequest struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

type CreateAllergenRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type CreateIngredientRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	AllergenIDs []string `json:"allergens"`
}

type CreateMealRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	IngredientIDs []string `json:"ingredientIds"`
}
