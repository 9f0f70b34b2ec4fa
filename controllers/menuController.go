package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetMenu serves the public customer view reached by scanning a table's
// QR code.
func GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		tableNumber, err := strconv.Atoi(c.Param("table_number"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table number"})
			return
		}

		menu, err := menuService.GetMenu(ctx, tableNumber)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, menu)
	}
}

// GetDailyStats returns the day's sales/expense/profit rollup. Defaults
// to today in the restaurant's timezone.
func GetDailyStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		date := time.Now()
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.ParseInLocation("2006-01-02", raw, cfg.Timezone)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
				return
			}
			date = parsed
		}

		stats, err := analytics.GetDailyStats(ctx, date)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
