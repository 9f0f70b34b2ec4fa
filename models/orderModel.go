package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the allowed forward moves. Terminal states have
// no outgoing transitions.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady, OrderCancelled},
	OrderReady:     {OrderCompleted, OrderCancelled},
	OrderCompleted: {},
	OrderCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransitionTo reports whether the state machine allows moving from s
// to next. Re-asserting the current status is always allowed so that
// payment webhooks can update paymentStatus without moving the order.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentOrangeMoney PaymentMethod = "orange_money"
	PaymentMTNMoMo     PaymentMethod = "mtn_momo"
	PaymentMoovMoney   PaymentMethod = "moov_money"
	PaymentWave        PaymentMethod = "wave"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentOrangeMoney, PaymentMTNMoMo, PaymentMoovMoney, PaymentWave:
		return true
	}
	return false
}

// MobileMoney reports whether the method is confirmed synchronously by
// the provider, in which case the order is created already paid.
func (m PaymentMethod) MobileMoney() bool {
	return m.Valid() && m != PaymentCash
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	TableID       *uint           `gorm:"index" json:"tableId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20)" json:"paymentMethod"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"paymentStatus"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `gorm:"not null" json:"createdAt"`
	CompletedAt   *time.Time      `json:"completedAt"`
	DeletedAt     *time.Time      `gorm:"index" json:"deletedAt,omitempty"`
	OrderItems    []OrderItem     `gorm:"foreignKey:OrderID" json:"orderItems,omitempty"`
}

// OrderItem snapshots the product price at order time; it never tracks
// later price changes on the product.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Notes     string          `json:"notes"`
}
