package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records money received, either generated by the lifecycle engine
// when an order completes paid, or entered manually (nil OrderID). The
// partial unique index enforces at most one live sale per order even
// under racing completion requests.
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderID       *uint           `gorm:"uniqueIndex:idx_sales_order_id,where:deleted_at IS NULL" json:"orderId"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	DeletedAt     *time.Time      `gorm:"index" json:"deletedAt,omitempty"`
}

type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"not null" json:"description" validate:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category" validate:"required"`
	ReceiptURL  string          `json:"receiptUrl"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
	DeletedAt   *time.Time      `gorm:"index" json:"deletedAt,omitempty"`
}
