package controllers

import (
	"net/http"

	"go-resto-manager/models"
	"go-resto-manager/services"

	"github.com/gin-gonic/gin"
)

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var (
			orders []models.Order
			err    error
		)
		switch {
		case c.Query("active") == "true":
			orders, err = store.GetActiveOrders(ctx)
		case c.Query("deleted") == "true":
			orders, err = store.GetDeletedOrders(ctx)
		default:
			orders, err = store.GetOrders(ctx)
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "order_id")
		if !ok {
			return
		}
		order, err := store.GetOrderWithItems(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// CreateOrder is the public table-side submission endpoint behind the QR
// code; it is the only way orders enter the system.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var in services.SubmitOrderInput
		if err := c.BindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := orderService.SubmitOrder(ctx, in)
		if err != nil {
			respondError(c, err)
			return
		}

		NotifyNewOrder(order)
		c.JSON(http.StatusOK, order)
	}
}

type statusUpdateRequest struct {
	Status        models.OrderStatus    `json:"status" validate:"required"`
	PaymentStatus *models.PaymentStatus `json:"paymentStatus"`
}

// UpdateOrderStatus drives the state machine for kitchen staff and the
// payment-integration callbacks (same status + paymentStatus=paid).
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "order_id")
		if !ok {
			return
		}
		var req statusUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := orderService.Transition(ctx, id, req.Status, req.PaymentStatus)
		if err != nil {
			respondError(c, err)
			return
		}

		NotifyOrderStatus(result.Order)
		c.JSON(http.StatusOK, gin.H{
			"order":    result.Order,
			"warnings": result.Warnings,
		})
	}
}

func DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		id, ok := paramID(c, "order_id")
		if !ok {
			return
		}
		if err := store.SoftDeleteOrder(ctx, id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order deleted successfully"})
	}
}
