package routes

import (
	"go-resto-manager/controllers"
	"go-resto-manager/middleware"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine) {
	auth := middleware.Authentication()

	incomingRoutes.GET("/api/tables", controllers.GetTables())
	incomingRoutes.GET("/api/tables/:table_id", controllers.GetTable())
	incomingRoutes.POST("/api/tables", auth, controllers.CreateTable())
	incomingRoutes.PUT("/api/tables/:table_id", auth, controllers.UpdateTable())
	incomingRoutes.DELETE("/api/tables/:table_id", auth, controllers.DeleteTable())
}
