package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a customer checkout. Immutable after creation except for Status.
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CustomerName    string         `gorm:"not null" json:"customer_name"`
	CustomerEmail   string         `gorm:"index;not null" json:"customer_email"`
	CustomerPhone   string         `gorm:"type:varchar(32)" json:"customer_phone,omitempty"`
	ShippingAddress string         `gorm:"type:text;not null" json:"shipping_address"`
	Total           Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	Status          string         `gorm:"index;not null;default:'pending'" json:"status"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
