package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name" validate:"required,min=2"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}

// Product rows referenced by order items are never hard-deleted; deletion
// degrades to archival (archived=true, available=false) so historical
// orders keep resolving their items.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name" validate:"required,min=2"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID  *uint           `gorm:"index" json:"categoryId"`
	ImageURL    string          `json:"imageUrl"`
	Available   bool            `gorm:"not null;default:true" json:"available"`
	Archived    bool            `gorm:"not null;default:false" json:"archived"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
}
