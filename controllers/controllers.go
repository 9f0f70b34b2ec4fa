package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go-resto-manager/config"
	"go-resto-manager/services"
	"go-resto-manager/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

var (
	store        storage.Storage
	cfg          *config.Config
	orderService *services.OrderService
	menuService  *services.MenuService
	analytics    *services.AnalyticsService

	validate = validator.New()
)

const requestTimeout = 10 * time.Second

// Init wires the controller package; called once from main.
func Init(s storage.Storage, c *config.Config) {
	store = s
	cfg = c
	orderService = services.NewOrderService(s, c)
	menuService = services.NewMenuService(s)
	analytics = services.NewAnalyticsService(s, c.Timezone)
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the service/storage error taxonomy onto HTTP codes.
func respondError(c *gin.Context, err error) {
	var (
		unavailable *services.ProductUnavailableError
		badLine     *services.InvalidOrderLineError
		badMethod   *services.PaymentMethodError
		badMove     *services.InvalidTransitionError
	)
	switch {
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyOrder),
		errors.As(err, &unavailable),
		errors.As(err, &badLine),
		errors.As(err, &badMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &badMove),
		errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
