package models

import (
	"time"
)

// CartItem is one (session, product) entry in a visitor's cart.
// At most one row exists per pair; adds merge into the existing row.
// Rows delete for real: a soft-delete would keep the unique pair index
// occupied and block re-adding the product.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_cart_session_product" json:"session_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
