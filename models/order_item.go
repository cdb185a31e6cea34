package models

import "github.com/shopspring/decimal"

// OrderItem keeps the menu price at the moment it was added; later price
// changes on the menu item do not touch it.
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ItemID      uint            `gorm:"not null" json:"item_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// Omitting MenuItem field from JSON to avoid nesting
	MenuItem *MenuItem `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
