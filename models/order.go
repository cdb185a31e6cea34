package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusCreated   = "created"
	OrderStatusPreparing = "preparing"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	OrderID     uint            `gorm:"primaryKey" json:"order_id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	BranchID    uint            `gorm:"not null;index" json:"branch_id"`
	EmployeeID  uint            `gorm:"not null;index" json:"employee_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'created'" json:"status"`
	OrderTime   time.Time       `gorm:"not null" json:"order_time"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items,omitempty"`
	Customer    *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Branch      *Branch         `gorm:"foreignKey:BranchID;references:BranchID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Employee    *Employee       `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type NewOrder struct {
	CustomerID  uint            `json:"customer_id" validate:"required"`
	BranchID    uint            `json:"branch_id" validate:"required"`
	EmployeeID  uint            `json:"employee_id" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

var orderTransitions = map[string][]string{
	OrderStatusCreated:   {OrderStatusPreparing, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: nil,
	OrderStatusCancelled: nil,
}

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another. Staying in the same status is always allowed.
func CanTransition(from, to string) bool {
	if !ValidOrderStatus(to) {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
