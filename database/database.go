package database

import (
	"errors"
	"log"
	"time"

	"go-resto-manager/config"
	"go-resto-manager/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres pool and migrates the schema. TranslateError
// is required so unique-constraint violations surface as
// gorm.ErrDuplicatedKey to the lifecycle engine's sale guard.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Sale{},
		&models.Expense{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedAdmin creates the default admin account on first boot.
func SeedAdmin(db *gorm.DB) error {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Create(&models.User{
			Username:    "admin",
			Password:    string(hashed),
			FullName:    "Administrateur",
			Role:        models.RoleAdmin,
			Permissions: []string{"all"},
			IsActive:    true,
		}).Error; err != nil {
			return err
		}
		log.Println("seeded default admin account (username: admin)")
		return nil
	default:
		return err
	}
}
