package storage

import (
	"context"

	"go-resto-manager/models"
)

func (s *DatabaseStorage) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("name").Find(&categories).Error
	return categories, translate(err)
}

func (s *DatabaseStorage) CreateCategory(ctx context.Context, category *models.Category) error {
	return translate(s.db.WithContext(ctx).Create(category).Error)
}

func (s *DatabaseStorage) UpdateCategory(ctx context.Context, id uint, patch map[string]interface{}) (*models.Category, error) {
	res := s.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *DatabaseStorage) DeleteCategory(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProducts lists the catalog for staff and customers; archived
// products are hidden but stay resolvable by id for historical orders.
func (s *DatabaseStorage) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Where("archived = ?", false).Order("name").Find(&products).Error
	return products, translate(err)
}

func (s *DatabaseStorage) GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("category_id = ? AND archived = ?", categoryID, false).
		Order("name").Find(&products).Error
	return products, translate(err)
}

func (s *DatabaseStorage) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *DatabaseStorage) CreateProduct(ctx context.Context, product *models.Product) error {
	return translate(s.db.WithContext(ctx).Create(product).Error)
}

func (s *DatabaseStorage) UpdateProduct(ctx context.Context, id uint, patch map[string]interface{}) (*models.Product, error) {
	res := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct hard-deletes the row only when no order item references
// it; otherwise it archives the product so past orders keep their lines.
func (s *DatabaseStorage) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return false, err
	}

	var refs int64
	if err := s.db.WithContext(ctx).Model(&models.OrderItem{}).
		Where("product_id = ?", id).Count(&refs).Error; err != nil {
		return false, translate(err)
	}

	if refs > 0 {
		err := s.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
			Updates(map[string]interface{}{"archived": true, "available": false}).Error
		return true, translate(err)
	}

	return false, translate(s.db.WithContext(ctx).Delete(&models.Product{}, id).Error)
}
