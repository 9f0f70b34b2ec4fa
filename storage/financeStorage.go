package storage

import (
	"context"
	"time"

	"go-resto-manager/models"
)

func (s *DatabaseStorage) GetSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, translate(err)
}

func (s *DatabaseStorage) GetDeletedSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&sales).Error
	return sales, translate(err)
}

func (s *DatabaseStorage) GetSalesByDateRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	var sales []models.Sale
	err := s.db.WithContext(ctx).
		Where("deleted_at IS NULL AND created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&sales).Error
	return sales, translate(err)
}

func (s *DatabaseStorage) GetSaleByOrderID(ctx context.Context, orderID uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).
		Where("order_id = ? AND deleted_at IS NULL", orderID).
		First(&sale).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sale, nil
}

// CreateSale relies on the partial unique index on order_id: a concurrent
// duplicate insert for the same order comes back as ErrDuplicate.
func (s *DatabaseStorage) CreateSale(ctx context.Context, sale *models.Sale) error {
	return translate(s.db.WithContext(ctx).Create(sale).Error)
}

func (s *DatabaseStorage) SoftDeleteSale(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.Sale{}).
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

func (s *DatabaseStorage) GetExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&expenses).Error
	return expenses, translate(err)
}

func (s *DatabaseStorage) GetDeletedExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.WithContext(ctx).
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&expenses).Error
	return expenses, translate(err)
}

func (s *DatabaseStorage) GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.WithContext(ctx).
		Where("deleted_at IS NULL AND created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&expenses).Error
	return expenses, translate(err)
}

func (s *DatabaseStorage) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return translate(s.db.WithContext(ctx).Create(expense).Error)
}

func (s *DatabaseStorage) UpdateExpense(ctx context.Context, id uint, patch map[string]interface{}) (*models.Expense, error) {
	res := s.db.WithContext(ctx).Model(&models.Expense{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(patch)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var expense models.Expense
	if err := s.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		return nil, translate(err)
	}
	return &expense, nil
}

func (s *DatabaseStorage) SoftDeleteExpense(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&models.Expense{}).
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
