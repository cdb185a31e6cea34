package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	EmployeeID uint            `gorm:"primaryKey" json:"employee_id"`
	Name       string          `gorm:"type:varchar(100);not null" json:"name"`
	Position   string          `gorm:"type:varchar(50);not null" json:"position"`
	HireDate   time.Time       `gorm:"type:date" json:"hire_date"`
	Salary     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"salary"`
	Email      string          `gorm:"type:varchar(100)" json:"email"`
	IsActive   bool            `gorm:"not null" json:"is_active"`
}

type NewEmployee struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Position string          `json:"position" validate:"required,max=50"`
	HireDate time.Time       `json:"hire_date" validate:"omitempty,calendar_date"`
	Salary   decimal.Decimal `json:"salary"`
	Email    string          `json:"email" validate:"omitempty,email,max=100"`
	IsActive *bool           `json:"is_active"`
}

// EmployeeBranch links an employee to a branch. The pair is the key, so
// assigning the same pair twice leaves a single row.
type EmployeeBranch struct {
	EmployeeID   uint      `gorm:"primaryKey;autoIncrement:false" json:"employee_id"`
	BranchID     uint      `gorm:"primaryKey;autoIncrement:false" json:"branch_id"`
	AssignedDate time.Time `gorm:"not null" json:"assigned_date"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Branch       *Branch   `gorm:"foreignKey:BranchID;references:BranchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// EmployeeWithBranch is a row of the employee listing. BranchID is nil for
// employees without an assignment.
type EmployeeWithBranch struct {
	Employee `gorm:"embedded"`
	BranchID *uint `json:"branch_id"`
}
