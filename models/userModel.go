package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleCashier  Role = "cashier"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee, RoleCashier:
		return true
	}
	return false
}

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username" validate:"required,min=3,max=50"`
	Password    string    `gorm:"not null" json:"-" validate:"required,min=6"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        Role      `gorm:"type:varchar(20);not null;default:'employee'" json:"role"`
	Permissions []string  `gorm:"serializer:json" json:"permissions"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	CreatedBy   *uint     `json:"createdBy"`
}
