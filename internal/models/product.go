package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a saree listing.
type Product struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	CategoryID         uint           `gorm:"not null;index" json:"category_id"`
	Name               string         `gorm:"not null" json:"name"`
	Description        string         `gorm:"type:text;not null" json:"description"`
	Price              Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	StockQuantity      int            `gorm:"not null;default:0" json:"stock_quantity"`
	DiscountPercentage int            `gorm:"not null;default:0" json:"discount_percentage"`
	Images             StringArray    `gorm:"type:json" json:"images"`
	Featured           bool           `gorm:"default:false;index" json:"featured"`
	NewArrival         bool           `gorm:"default:false" json:"new_arrival"`
	LimitedEdition     bool           `gorm:"default:false" json:"limited_edition"`
	SKU                string         `gorm:"uniqueIndex;not null" json:"sku"`
	IsActive           bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
