package models

import "time"

const SupplyStatusInProgress = "in_progress"

type SupplyOrder struct {
	SupplyOrderID uint              `gorm:"primaryKey" json:"supply_order_id"`
	SupplierID    uint              `gorm:"not null;index" json:"supplier_id"`
	BranchID      uint              `gorm:"not null;index" json:"branch_id"`
	Status        string            `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	OrderDate     time.Time         `gorm:"not null" json:"order_date"`
	Items         []SupplyOrderItem `gorm:"foreignKey:SupplyOrderID;references:SupplyOrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Supplier      *Supplier         `gorm:"foreignKey:SupplierID;references:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Branch        *Branch           `gorm:"foreignKey:BranchID;references:BranchID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type NewSupplyOrder struct {
	SupplierID uint   `json:"supplier_id" validate:"required"`
	BranchID   uint   `json:"branch_id" validate:"required"`
	Status     string `json:"status" validate:"max=20"`
}

type SupplyOrderItem struct {
	SupplyOrderItemID uint      `gorm:"primaryKey" json:"supply_order_item_id"`
	SupplyOrderID     uint      `gorm:"not null;index" json:"supply_order_id"`
	ItemID            uint      `gorm:"not null" json:"item_id"`
	Quantity          int       `gorm:"not null" json:"quantity"`
	MenuItem          *MenuItem `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
