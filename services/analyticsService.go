package services

import (
	"context"
	"time"

	"go-resto-manager/storage"

	"github.com/shopspring/decimal"
)

type AnalyticsService struct {
	store storage.Storage
	loc   *time.Location
}

func NewAnalyticsService(store storage.Storage, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{store: store, loc: loc}
}

type DailyStats struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Profit        decimal.Decimal `json:"profit"`
	OrderCount    int64           `json:"orderCount"`
}

// GetDailyStats sums the day's sales and expenses in the restaurant's
// timezone. Orders are counted by creation day regardless of status.
// A day with no rows yields zeros, not an error.
func (s *AnalyticsService) GetDailyStats(ctx context.Context, date time.Time) (*DailyStats, error) {
	day := date.In(s.loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	end := start.Add(24*time.Hour - time.Nanosecond)

	sales, err := s.store.GetSalesByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.GetExpensesByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.store.CountOrdersByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	for _, sale := range sales {
		totalSales = totalSales.Add(sale.Amount)
	}
	totalExpenses := decimal.Zero
	for _, expense := range expenses {
		totalExpenses = totalExpenses.Add(expense.Amount)
	}

	return &DailyStats{
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		Profit:        totalSales.Sub(totalExpenses),
		OrderCount:    orderCount,
	}, nil
}
