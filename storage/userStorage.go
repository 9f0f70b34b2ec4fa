package storage

import (
	"context"

	"go-resto-manager/models"
)

func (s *DatabaseStorage) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("username").Find(&users).Error
	return users, translate(err)
}

func (s *DatabaseStorage) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DatabaseStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DatabaseStorage) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

func (s *DatabaseStorage) UpdateUser(ctx context.Context, id uint, patch map[string]interface{}) (*models.User, error) {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetUser(ctx, id)
}
