// Package models holds the persisted entities of the inventory service.
package models

// Item is a stock-keeping record identified by its SKU.
// Color and Size are nil when the client left them empty.
type Item struct {
	SKU         string  `gorm:"column:sku;primaryKey;type:text" json:"sku"`
	Name        string  `gorm:"column:name;type:text;not null" json:"name"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	Color       *string `gorm:"column:color;type:text" json:"color"`
	Size        *string `gorm:"column:size;type:text" json:"size"`
	Count       int     `gorm:"column:count;not null" json:"count"`
}

// TableName returns the table name for Item
func (Item) TableName() string {
	return "items"
}
