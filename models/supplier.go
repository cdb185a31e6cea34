package models

import "github.com/shopspring/decimal"

type Supplier struct {
	SupplierID uint   `gorm:"primaryKey" json:"supplier_id"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Phone      string `gorm:"type:varchar(20)" json:"phone"`
	Email      string `gorm:"type:varchar(100)" json:"email"`
	Address    string `gorm:"type:varchar(255)" json:"address"`
}

type NewSupplier struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email,max=100"`
	Address string `json:"address" validate:"max=255"`
}

// SupplierMenuItem links a supplier to a menu item at a supply price.
type SupplierMenuItem struct {
	SupplierID  uint            `gorm:"primaryKey;autoIncrement:false" json:"supplier_id"`
	ItemID      uint            `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	SupplyPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"supply_price"`
	Supplier    *Supplier       `gorm:"foreignKey:SupplierID;references:SupplierID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Item        *MenuItem       `gorm:"foreignKey:ItemID;references:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// SupplierItem is a menu item as delivered by one supplier.
type SupplierItem struct {
	MenuItem    `gorm:"embedded"`
	SupplyPrice decimal.Decimal `json:"supply_price"`
}

// SupplierPrice is the short price-list form of SupplierItem.
type SupplierPrice struct {
	Name        string          `json:"name"`
	SupplyPrice decimal.Decimal `json:"supply_price"`
}
