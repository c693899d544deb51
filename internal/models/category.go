package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringArray stores a string slice as a JSON column, used for product images.
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Category groups products, e.g. Silk Sarees, Cotton Sarees. Deletes are
// real deletes: the unique name would otherwise stay reserved by a
// soft-deleted row.
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName sets the table name.
func (Category) TableName() string {
	return "categories"
}
