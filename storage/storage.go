package storage

import (
	"context"
	"errors"
	"time"

	"go-resto-manager/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned for missing rows regardless of entity.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (table number, username, sale per order).
	ErrDuplicate = errors.New("duplicate record")
)

// Storage is the repository consumed by the services and controllers.
// List operations exclude soft-deleted rows; the Deleted* family returns
// only soft-deleted rows for archive views. Updates are partial patches
// keyed by column name; absent columns are left untouched.
type Storage interface {
	// Users
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id uint, patch map[string]interface{}) (*models.User, error)

	// Categories
	GetCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id uint, patch map[string]interface{}) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	// Products
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id uint, patch map[string]interface{}) (*models.Product, error)
	// DeleteProduct hard-deletes an unreferenced product and archives a
	// referenced one. The returned flag reports which path was taken.
	DeleteProduct(ctx context.Context, id uint) (archived bool, err error)

	// Tables
	GetTables(ctx context.Context) ([]models.Table, error)
	GetTable(ctx context.Context, id uint) (*models.Table, error)
	GetTableByNumber(ctx context.Context, number int) (*models.Table, error)
	CreateTable(ctx context.Context, table *models.Table) error
	UpdateTable(ctx context.Context, id uint, patch map[string]interface{}) (*models.Table, error)
	DeleteTable(ctx context.Context, id uint) error

	// Orders
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetActiveOrders(ctx context.Context) ([]models.Order, error)
	GetDeletedOrders(ctx context.Context) ([]models.Order, error)
	GetOrdersForTable(ctx context.Context, tableID uint) ([]models.Order, error)
	GetActiveOrdersForTable(ctx context.Context, tableID uint) ([]models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
	GetOrderWithItems(ctx context.Context, id uint) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	UpdateOrder(ctx context.Context, id uint, patch map[string]interface{}) (*models.Order, error)
	SoftDeleteOrder(ctx context.Context, id uint) error
	GetOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error)

	// Sales
	GetSales(ctx context.Context) ([]models.Sale, error)
	GetDeletedSales(ctx context.Context) ([]models.Sale, error)
	GetSalesByDateRange(ctx context.Context, start, end time.Time) ([]models.Sale, error)
	GetSaleByOrderID(ctx context.Context, orderID uint) (*models.Sale, error)
	CreateSale(ctx context.Context, sale *models.Sale) error
	SoftDeleteSale(ctx context.Context, id uint) error

	// Expenses
	GetExpenses(ctx context.Context) ([]models.Expense, error)
	GetDeletedExpenses(ctx context.Context) ([]models.Expense, error)
	GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpense(ctx context.Context, id uint, patch map[string]interface{}) (*models.Expense, error)
	SoftDeleteExpense(ctx context.Context, id uint) error

	// Analytics
	CountOrdersByDateRange(ctx context.Context, start, end time.Time) (int64, error)
}

// DatabaseStorage implements Storage on gorm/Postgres.
type DatabaseStorage struct {
	db *gorm.DB
}

var _ Storage = (*DatabaseStorage)(nil)

func New(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

// translate maps gorm errors to the storage taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
