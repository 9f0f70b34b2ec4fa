package storage

import (
	"context"
	"time"

	"go-resto-manager/models"

	"gorm.io/gorm"
)

func (s *DatabaseStorage) orderQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product")
}

func (s *DatabaseStorage) GetOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.orderQuery(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, translate(err)
}

func (s *DatabaseStorage) GetActiveOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.orderQuery(ctx).
		Where("deleted_at IS NULL AND status NOT IN ?",
			[]models.OrderStatus{models.OrderCompleted, models.OrderCancelled}).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, translate(err)
}

func (s *DatabaseStorage) GetDeletedOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.orderQuery(ctx).
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&orders).Error
	return orders, translate(err)
}

func (s *DatabaseStorage) GetOrdersForTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.orderQuery(ctx).
		Where("table_id = ? AND deleted_at IS NULL", tableID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, translate(err)
}

// GetActiveOrdersForTable is the occupancy scan: every non-deleted order
// on the table that is still in a non-terminal status.
func (s *DatabaseStorage) GetActiveOrdersForTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("table_id = ? AND deleted_at IS NULL AND status NOT IN ?",
			tableID, []models.OrderStatus{models.OrderCompleted, models.OrderCancelled}).
		Find(&orders).Error
	return orders, translate(err)
}

func (s *DatabaseStorage) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *DatabaseStorage) GetOrderWithItems(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.orderQuery(ctx).First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *DatabaseStorage) CreateOrder(ctx context.Context, order *models.Order) error {
	return translate(s.db.WithContext(ctx).Create(order).Error)
}

func (s *DatabaseStorage) UpdateOrder(ctx context.Context, id uint, patch map[string]interface{}) (*models.Order, error) {
	res := s.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetOrderWithItems(ctx, id)
}

// SoftDeleteOrder stamps deleted_at; order rows are never removed so the
// sales history stays intact. Items follow the order implicitly.
func (s *DatabaseStorage) SoftDeleteOrder(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateOrderWithItems persists an order and its lines in one
// transaction; a failing line rolls back the order row.
func (s *DatabaseStorage) CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translate(err)
}

func (s *DatabaseStorage) GetOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, translate(err)
}

func (s *DatabaseStorage) CountOrdersByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("created_at BETWEEN ? AND ?", start, end).
		Count(&count).Error
	return count, translate(err)
}
