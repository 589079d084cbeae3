package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Name          string    `gorm:"uniqueIndex;not null;size:200"`
	Description   *string   `gorm:"size:200"`
	Price         float64   `gorm:"not null"`
	StockQuantity int       `gorm:"not null"`
	CreatedAt     time.Time // set by the service on creation, never updated
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "products"
}
