package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Inventory struct {
	InventoryID uint            `gorm:"primaryKey" json:"inventory_id"`
	BranchID    uint            `gorm:"not null;uniqueIndex:idx_inventory_branch_item" json:"branch_id"`
	ItemName    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_inventory_branch_item" json:"item_name"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"quantity"`
	Unit        string          `gorm:"type:varchar(20);not null" json:"unit"`
	LastUpdated time.Time       `gorm:"not null" json:"last_updated"`
	Branch      *Branch         `gorm:"foreignKey:BranchID;references:BranchID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Inventory) TableName() string {
	return "inventory"
}

type NewInventory struct {
	BranchID uint            `json:"branch_id" validate:"required"`
	ItemName string          `json:"item_name" validate:"required,max=100"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit" validate:"required,max=20"`
}
