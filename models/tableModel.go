package models

import "time"

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

// Table status is derived from the table's active orders once any exist;
// manual status edits only hold while the table has no open orders.
type Table struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Number    int         `gorm:"uniqueIndex;not null" json:"number"`
	Capacity  int         `gorm:"not null;default:4" json:"capacity"`
	QRCode    string      `gorm:"not null" json:"qrCode"`
	Status    TableStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	CreatedAt time.Time   `gorm:"not null" json:"createdAt"`
}
