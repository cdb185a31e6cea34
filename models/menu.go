package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ItemID      uint            `gorm:"primaryKey" json:"item_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Calories    int             `json:"calories"`
	IsAvailable bool            `gorm:"not null" json:"is_available"`
	ImageURL    *string         `gorm:"type:varchar(255)" json:"image_url,omitempty"`
}

type NewMenuItem struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=2000"`
	Price       decimal.Decimal `json:"price"`
	Calories    int             `json:"calories" validate:"gte=0"`
	IsAvailable *bool           `json:"is_available"`
	ImageURL    *string         `json:"image_url" validate:"omitempty,max=255"`
}

// MenuEntry is one line of the full menu: an item with the name of its
// category, or nil when the item is not categorised.
type MenuEntry struct {
	ItemID      uint            `json:"item_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	Category    *string         `json:"category"`
}
