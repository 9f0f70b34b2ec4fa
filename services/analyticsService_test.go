package services

import (
	"context"
	"testing"
	"time"

	"go-resto-manager/models"

	"github.com/shopspring/decimal"
	"gopkg.in/go-playground/assert.v1"
)

func TestDailyStatsEmptyDayIsZero(t *testing.T) {
	store := newMemStore()
	svc := NewAnalyticsService(store, time.UTC)

	stats, err := svc.GetDailyStats(context.Background(), time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, err, nil)
	assert.Equal(t, stats.TotalSales.String(), "0")
	assert.Equal(t, stats.TotalExpenses.String(), "0")
	assert.Equal(t, stats.Profit.String(), "0")
	assert.Equal(t, stats.OrderCount, int64(0))
}

func TestDailyStatsSumsOnlyThatDay(t *testing.T) {
	store := newMemStore()
	svc := NewAnalyticsService(store, time.UTC)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	store.CreateSale(context.Background(), &models.Sale{
		Amount:        decimal.RequireFromString("5000.50"),
		PaymentMethod: models.PaymentCash,
		CreatedAt:     day.Add(10 * time.Hour),
	})
	store.CreateSale(context.Background(), &models.Sale{
		Amount:        decimal.RequireFromString("2000.25"),
		PaymentMethod: models.PaymentWave,
		CreatedAt:     day.Add(20 * time.Hour),
	})
	// Previous day, must be excluded.
	store.CreateSale(context.Background(), &models.Sale{
		Amount:        decimal.RequireFromString("9999"),
		PaymentMethod: models.PaymentCash,
		CreatedAt:     day.Add(-2 * time.Hour),
	})
	store.CreateExpense(context.Background(), &models.Expense{
		Description: "Marché",
		Amount:      decimal.RequireFromString("1500.75"),
		Category:    "ingredients",
		CreatedAt:   day.Add(8 * time.Hour),
	})
	// Orders count by creation day regardless of status.
	store.CreateOrder(context.Background(), &models.Order{
		Status:    models.OrderCancelled,
		CreatedAt: day.Add(9 * time.Hour),
	})
	store.CreateOrder(context.Background(), &models.Order{
		Status:    models.OrderPending,
		CreatedAt: day.Add(11 * time.Hour),
	})

	stats, err := svc.GetDailyStats(context.Background(), day)
	assert.Equal(t, err, nil)
	assert.Equal(t, stats.TotalSales.String(), "7000.75")
	assert.Equal(t, stats.TotalExpenses.String(), "1500.75")
	assert.Equal(t, stats.Profit.String(), "5500")
	assert.Equal(t, stats.OrderCount, int64(2))
}
