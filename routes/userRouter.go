package routes

import (
	"go-resto-manager/controllers"
	"go-resto-manager/middleware"
	"go-resto-manager/models"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	auth := middleware.Authentication()
	adminOnly := middleware.RequireRole(models.RoleAdmin, models.RoleManager)

	incomingRoutes.POST("/api/auth/login", controllers.Login())
	incomingRoutes.POST("/api/auth/register", controllers.SignUp())
	incomingRoutes.GET("/api/users", auth, adminOnly, controllers.GetUsers())
	incomingRoutes.GET("/api/users/:user_id", auth, adminOnly, controllers.GetUser())
}
