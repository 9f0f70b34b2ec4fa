package routes

import (
	"go-resto-manager/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/menu/:table_number", controllers.GetMenu())
	incomingRoutes.GET("/api/ws", controllers.HandleWebSocket())
}
