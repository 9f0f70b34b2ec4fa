package routes

import (
	"go-resto-manager/controllers"
	"go-resto-manager/middleware"

	"github.com/gin-gonic/gin"
)

func SaleRoutes(incomingRoutes *gin.Engine) {
	auth := middleware.Authentication()

	incomingRoutes.GET("/api/sales", auth, controllers.GetSales())
	incomingRoutes.POST("/api/sales", auth, controllers.CreateSale())
	incomingRoutes.DELETE("/api/sales/:sale_id", auth, controllers.DeleteSale())

	incomingRoutes.GET("/api/expenses", auth, controllers.GetExpenses())
	incomingRoutes.POST("/api/expenses", auth, controllers.CreateExpense())
	incomingRoutes.PUT("/api/expenses/:expense_id", auth, controllers.UpdateExpense())
	incomingRoutes.DELETE("/api/expenses/:expense_id", auth, controllers.DeleteExpense())

	incomingRoutes.GET("/api/analytics/daily", auth, controllers.GetDailyStats())
}
