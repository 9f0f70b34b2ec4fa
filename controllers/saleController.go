package controllers

import (
	"errors"
	"net/http"
	"time"

	"go-resto-manager/models"
	"go-resto-manager/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// parseDateRange reads optional startDate/endDate query params
// (YYYY-MM-DD) interpreted in the restaurant's timezone.
func parseDateRange(c *gin.Context) (start, end time.Time, ok, present bool) {
	rawStart := c.Query("startDate")
	rawEnd := c.Query("endDate")
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, true, false
	}
	start, err := time.ParseInLocation("2006-01-02", rawStart, cfg.Timezone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return time.Time{}, time.Time{}, false, false
	}
	end, err = time.ParseInLocation("2006-01-02", rawEnd, cfg.Timezone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
		return time.Time{}, time.Time{}, false, false
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, true, true
}

func GetSales() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if c.Query("deleted") == "true" {
			sales, err := store.GetDeletedSales(ctx)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, sales)
			return
		}

		start, end, ok, present := parseDateRange(c)
		if !ok {
			return
		}
		var (
			sales []models.Sale
			err   error
		)
		if present {
			sales, err = store.GetSalesByDateRange(ctx, start, end)
		} else {
			sales, err = store.GetSales(ctx)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sales)
	}
}

type createSaleRequest struct {
	OrderID       *uint                `json:"orderId"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" validate:"required"`
	Description   string               `json:"description"`
}

// CreateSale is the manual entry path; engine-generated sales go through
// the lifecycle hook. An orderId that already has a sale is rejected.
func CreateSale() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req createSaleRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !req.PaymentMethod.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
			return
		}
		if !req.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
			return
		}

		sale := models.Sale{
			OrderID:       req.OrderID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			Description:   req.Description,
			CreatedAt:     time.Now(),
		}
		if err := store.CreateSale(ctx, &sale); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{"error": "a sale already exists for this order"})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

func DeleteSale() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "sale_id")
		if !ok {
			return
		}
		if err := store.SoftDeleteSale(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "sale deleted successfully"})
	}
}

func GetExpenses() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		if c.Query("deleted") == "true" {
			expenses, err := store.GetDeletedExpenses(ctx)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, expenses)
			return
		}

		start, end, ok, present := parseDateRange(c)
		if !ok {
			return
		}
		var (
			expenses []models.Expense
			err      error
		)
		if present {
			expenses, err = store.GetExpensesByDateRange(ctx, start, end)
		} else {
			expenses, err = store.GetExpenses(ctx)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, expenses)
	}
}

func CreateExpense() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var expense models.Expense
		if err := c.BindJSON(&expense); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&expense); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !expense.Amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
			return
		}

		expense.ID = 0
		expense.CreatedAt = time.Now()
		expense.DeletedAt = nil
		if err := store.CreateExpense(ctx, &expense); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, expense)
	}
}

type expensePatch struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	ReceiptURL  *string          `json:"receiptUrl"`
}

func UpdateExpense() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "expense_id")
		if !ok {
			return
		}
		var req expensePatch
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		patch := map[string]interface{}{}
		if req.Description != nil {
			patch["description"] = *req.Description
		}
		if req.Amount != nil {
			if !req.Amount.IsPositive() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
				return
			}
			patch["amount"] = *req.Amount
		}
		if req.Category != nil {
			patch["category"] = *req.Category
		}
		if req.ReceiptURL != nil {
			patch["receipt_url"] = *req.ReceiptURL
		}
		if len(patch) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
			return
		}

		expense, err := store.UpdateExpense(ctx, id, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, expense)
	}
}

func DeleteExpense() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "expense_id")
		if !ok {
			return
		}
		if err := store.SoftDeleteExpense(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "expense deleted successfully"})
	}
}
