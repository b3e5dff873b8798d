package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allersafe/backend/internal/catalog"
	"github.com/allersafe/backend/internal/models"
	"github.com/allersafe/backend/internal/service"
)

// CatalogHandler serves the admin catalog: allergens, ingredients and meals.
type CatalogHandler struct {
	repo   *catalog.Repository
	images *service.ImageService
}

func NewCatalogHandler(repo *catalog.Repository, images *service.ImageService) *CatalogHandler {
	return &CatalogHandler{repo: repo, images: images}
}

func (h *CatalogHandler) ListAllergens(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"allergens": h.repo.Allergens()})
}

func (h *CatalogHandler) CreateAllergen(c *gin.Context) {
	var req CreateAllergenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allergen := h.repo.AddAllergen(models.Allergen{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	})
	c.JSON(http.StatusCreated, allergen)
}

// DeleteAllergen removes the allergen and its id from every ingredient.
func (h *CatalogHandler) DeleteAllergen(c *gin.Context) {
	id := c.Param("id")
	h.repo.DeleteAllergen(id)
	c.JSON(http.StatusOK, gin.H{"message": "Allergen deleted successfully", "id": id})
}

func (h *CatalogHandler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ingredients": h.repo.Ingredients()})
}

func (h *CatalogHandler) CreateIngredient(c *gin.Context) {
	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient := h.repo.AddIngredient(models.Ingredient{
		Name:        req.Name,
		Category:    req.Category,
		AllergenIDs: req.AllergenIDs,
	})
	c.JSON(http.StatusCreated, ingredient)
}

// DeleteIngredient removes the ingredient and cascades into meal snapshots.
func (h *CatalogHandler) DeleteIngredient(c *gin.Context) {
	id := c.Param("id")
	h.repo.DeleteIngredient(id)
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully", "id": id})
}

func (h *CatalogHandler) ListMeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"meals": h.repo.Meals()})
}

func (h *CatalogHandler) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := h.repo.AddMeal(req.Name, req.Description, req.Image, req.IngredientIDs)
	c.JSON(http.StatusCreated, meal)
}

func (h *CatalogHandler) DeleteMeal(c *gin.Context) {
	id := c.Param("id")
	h.repo.DeleteMeal(id)
	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully", "id": id})
}

// UploadMealImage stores an image for the meal and records its public URL.
func (h *CatalogHandler) UploadMealImage(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.repo.FindMeal(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
		return
	}
	if !h.images.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer file.Close()

	url, err := h.images.UploadMealImage(c.Request.Context(), id, file, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	h.repo.SetMealImage(id, url)
	c.JSON(http.StatusOK, gin.H{"image": url})
}
