package router

import (
	"github.com/gin-gonic/gin"

	"github.com/allersafe/backend/internal/api"
	"github.com/allersafe/backend/internal/middleware"
	"github.com/allersafe/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	mealHandler *api.MealHandler,
	catalogHandler *api.CatalogHandler,
	authService *service.AuthService,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		// Profile routes
		profile := protected.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("/allergens/:id", profileHandler.SetAllergenSeverity)
			profile.POST("/preferences/:id", profileHandler.TogglePreference)
		}

		// Meal routes
		meals := protected.Group("/meals")
		{
			meals.GET("", mealHandler.ListMeals)
			meals.GET("/:id", mealHandler.GetMeal)
			meals.GET("/:id/warnings", mealHandler.MealWarnings)
			meals.POST("/:id/favorite", mealHandler.ToggleFavorite)
			meals.POST("/:id/rating", mealHandler.SubmitRating)
			meals.GET("/:id/rating", mealHandler.GetRating)
		}

		protected.GET("/favorites", mealHandler.ListFavorites)

		// Admin catalog routes
		admin := protected.Group("/admin")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("/allergens", catalogHandler.ListAllergens)
			admin.POST("/allergens", catalogHandler.CreateAllergen)
			admin.DELETE("/allergens/:id", catalogHandler.DeleteAllergen)

			admin.GET("/ingredients", catalogHandler.ListIngredients)
			admin.POST("/ingredients", catalogHandler.CreateIngredient)
			admin.DELETE("/ingredients/:id", catalogHandler.DeleteIngredient)

			admin.GET("/meals", catalogHandler.ListMeals)
			admin.POST("/meals", catalogHandler.CreateMeal)
			admin.DELETE("/meals/:id", catalogHandler.DeleteMeal)
			admin.POST("/meals/:id/image", catalogHandler.UploadMealImage)
		}
	}

	return router
}
