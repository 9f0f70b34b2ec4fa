package services

import (
	"context"
	"errors"
	"fmt"

	"go-resto-manager/models"
	"go-resto-manager/storage"
)

type MenuService struct {
	store storage.Storage
}

func NewMenuService(store storage.Storage) *MenuService {
	return &MenuService{store: store}
}

// MenuView is the customer-facing projection behind the table QR code.
// The table's own orders are included so the ordering client can poll
// for kitchen-driven status changes.
type MenuView struct {
	Table      *models.Table     `json:"table"`
	Categories []models.Category `json:"categories"`
	Products   []models.Product  `json:"products"`
	Orders     []models.Order    `json:"orders"`
}

func (s *MenuService) GetMenu(ctx context.Context, tableNumber int) (*MenuView, error) {
	table, err := s.store.GetTableByNumber(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: number %d", ErrTableNotFound, tableNumber)
		}
		return nil, err
	}

	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.store.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Available {
			available = append(available, p)
		}
	}

	orders, err := s.store.GetOrdersForTable(ctx, table.ID)
	if err != nil {
		return nil, err
	}

	return &MenuView{
		Table:      table,
		Categories: categories,
		Products:   available,
		Orders:     orders,
	}, nil
}
