package routes

import (
	"go-resto-manager/controllers"
	"go-resto-manager/middleware"

	"github.com/gin-gonic/gin"
)

func ProductRoutes(incomingRoutes *gin.Engine) {
	auth := middleware.Authentication()

	incomingRoutes.GET("/api/categories", controllers.GetCategories())
	incomingRoutes.POST("/api/categories", auth, controllers.CreateCategory())
	incomingRoutes.PUT("/api/categories/:category_id", auth, controllers.UpdateCategory())
	incomingRoutes.DELETE("/api/categories/:category_id", auth, controllers.DeleteCategory())

	incomingRoutes.GET("/api/products", controllers.GetProducts())
	incomingRoutes.GET("/api/products/:product_id", controllers.GetProduct())
	incomingRoutes.POST("/api/products", auth, controllers.CreateProduct())
	incomingRoutes.PUT("/api/products/:product_id", auth, controllers.UpdateProduct())
	incomingRoutes.DELETE("/api/products/:product_id", auth, controllers.DeleteProduct())
}
