package routes

import (
	"go-resto-manager/controllers"
	"go-resto-manager/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	auth := middleware.Authentication()

	// Submission and lookup are public: customers order from their
	// phones without an account.
	incomingRoutes.POST("/api/orders", controllers.CreateOrder())
	incomingRoutes.GET("/api/orders/:order_id", controllers.GetOrder())

	incomingRoutes.GET("/api/orders", auth, controllers.GetOrders())
	incomingRoutes.PATCH("/api/orders/:order_id/status", auth, controllers.UpdateOrderStatus())
	incomingRoutes.DELETE("/api/orders/:order_id", auth, controllers.DeleteOrder())
}
