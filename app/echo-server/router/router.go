package router

import (
	"brewjournal/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct)
	products.PUT("/:id", handler.UpdateProduct)
	products.DELETE("/:id", handler.DeleteProduct)
}

func SetupRoastBatchRoutes(api *echo.Group, handler *rest.RoastBatchHandler) {
	batches := api.Group("/batches")

	batches.GET("", handler.GetAllBatches)
	batches.GET("/:id", handler.GetBatchByID)
	batches.POST("", handler.CreateBatch)
	batches.PUT("/:id", handler.UpdateBatch)
	batches.DELETE("/:id", handler.DeleteBatch)
}

func SetupSessionRoutes(api *echo.Group, handler *rest.BrewSessionHandler) {
	sessions := api.Group("/sessions")

	sessions.GET("", handler.GetAllSessions)
	sessions.GET("/:id", handler.GetSessionByID)
	sessions.POST("", handler.CreateSession)
	sessions.PUT("/:id", handler.UpdateSession)
	sessions.DELETE("/:id", handler.DeleteSession)
}

func SetupShotRoutes(api *echo.Group, handler *rest.EspressoShotHandler) {
	shots := api.Group("/shots")

	shots.GET("", handler.GetAllShots)
	shots.GET("/:id", handler.GetShotByID)
	shots.POST("", handler.CreateShot)
	shots.PUT("/:id", handler.UpdateShot)
	shots.DELETE("/:id", handler.DeleteShot)
}

func SetupEquipmentRoutes(api *echo.Group, handler *rest.EquipmentHandler) {
	equipment := api.Group("/equipment")

	equipment.GET("", handler.GetAllEquipment)
	equipment.GET("/:id", handler.GetEquipmentByID)
	equipment.POST("", handler.CreateEquipment)
	equipment.PUT("/:id", handler.UpdateEquipment)
	equipment.DELETE("/:id", handler.DeleteEquipment)
}

func SetupLookupRoutes(api *echo.Group, handler *rest.LookupHandler) {
	lookups := api.Group("/lookups")

	lookups.GET("/:kind", handler.GetValues)
	lookups.POST("", handler.CreateValue)
	lookups.PUT("/:id", handler.UpdateValue)
	lookups.DELETE("/:id", handler.DeleteValue)
}

func SetupStatsRoutes(api *echo.Group, handler *rest.StatsHandler) {
	stats := api.Group("/stats")

	stats.GET("", handler.GetOverview)
	stats.GET("/products", handler.GetProductStats)
	stats.GET("/products/:id/methods", handler.GetMethodStats)
}

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.Recommend)
	reco.POST("/apply", handler.Apply)
	reco.POST("/feedback", handler.Feedback)
	reco.GET("/feedback", handler.FeedbackHistory)
}
