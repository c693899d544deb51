package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem is one line of an order. Price is a snapshot taken at order
// time and stays fixed when the product price later changes.
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"order_id"`
	ProductID uint           `gorm:"index;not null" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Price     Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
