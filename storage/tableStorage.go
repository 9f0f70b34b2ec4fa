package storage

import (
	"context"

	"go-resto-manager/models"
)

func (s *DatabaseStorage) GetTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	err := s.db.WithContext(ctx).Order("number").Find(&tables).Error
	return tables, translate(err)
}

func (s *DatabaseStorage) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := s.db.WithContext(ctx).First(&table, id).Error; err != nil {
		return nil, translate(err)
	}
	return &table, nil
}

func (s *DatabaseStorage) GetTableByNumber(ctx context.Context, number int) (*models.Table, error) {
	var table models.Table
	if err := s.db.WithContext(ctx).Where("number = ?", number).First(&table).Error; err != nil {
		return nil, translate(err)
	}
	return &table, nil
}

func (s *DatabaseStorage) CreateTable(ctx context.Context, table *models.Table) error {
	return translate(s.db.WithContext(ctx).Create(table).Error)
}

func (s *DatabaseStorage) UpdateTable(ctx context.Context, id uint, patch map[string]interface{}) (*models.Table, error) {
	res := s.db.WithContext(ctx).Model(&models.Table{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetTable(ctx, id)
}

func (s *DatabaseStorage) DeleteTable(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Table{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
