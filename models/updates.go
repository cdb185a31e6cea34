package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column is a relational column a typed update may write. Only the
// constants below are ever used as keys, so update statements never carry
// caller-supplied column names.
type Column string

const (
	ColCustomerName  Column = "name"
	ColCustomerPhone Column = "phone"
	ColCustomerEmail Column = "email"

	ColEmployeeName     Column = "name"
	ColEmployeePosition Column = "position"
	ColEmployeeHireDate Column = "hire_date"
	ColEmployeeSalary   Column = "salary"
	ColEmployeeEmail    Column = "email"
	ColEmployeeIsActive Column = "is_active"

	ColCategoryName        Column = "name"
	ColCategoryDescription Column = "description"

	ColItemName        Column = "name"
	ColItemDescription Column = "description"
	ColItemPrice       Column = "price"
	ColItemCalories    Column = "calories"
	ColItemIsAvailable Column = "is_available"
	ColItemImageURL    Column = "image_url"

	ColOrderBranchID   Column = "branch_id"
	ColOrderEmployeeID Column = "employee_id"
	ColOrderStatus     Column = "status"

	ColSupplierName    Column = "name"
	ColSupplierPhone   Column = "phone"
	ColSupplierEmail   Column = "email"
	ColSupplierAddress Column = "address"

	ColInventoryItemName Column = "item_name"
	ColInventoryUnit     Column = "unit"

	ColSupplyStatus   Column = "status"
	ColSupplyBranchID Column = "branch_id"
)

func put[T any](cols map[Column]any, col Column, v *T) {
	if v != nil {
		cols[col] = *v
	}
}

type CustomerUpdate struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
	Email *string `json:"email" validate:"omitempty,email,max=100"`
}

func (u CustomerUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColCustomerName, u.Name)
	put(cols, ColCustomerPhone, u.Phone)
	put(cols, ColCustomerEmail, u.Email)
	return cols
}

type EmployeeUpdate struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Position *string          `json:"position" validate:"omitempty,min=1,max=50"`
	HireDate *time.Time       `json:"hire_date" validate:"omitempty,calendar_date"`
	Salary   *decimal.Decimal `json:"salary"`
	Email    *string          `json:"email" validate:"omitempty,email,max=100"`
	IsActive *bool            `json:"is_active"`
}

func (u EmployeeUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColEmployeeName, u.Name)
	put(cols, ColEmployeePosition, u.Position)
	put(cols, ColEmployeeHireDate, u.HireDate)
	put(cols, ColEmployeeSalary, u.Salary)
	put(cols, ColEmployeeEmail, u.Email)
	put(cols, ColEmployeeIsActive, u.IsActive)
	return cols
}

type MenuCategoryUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

func (u MenuCategoryUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColCategoryName, u.Name)
	put(cols, ColCategoryDescription, u.Description)
	return cols
}

type MenuItemUpdate struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Calories    *int             `json:"calories" validate:"omitempty,gte=0"`
	IsAvailable *bool            `json:"is_available"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,max=255"`
}

func (u MenuItemUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColItemName, u.Name)
	put(cols, ColItemDescription, u.Description)
	put(cols, ColItemPrice, u.Price)
	put(cols, ColItemCalories, u.Calories)
	put(cols, ColItemIsAvailable, u.IsAvailable)
	put(cols, ColItemImageURL, u.ImageURL)
	return cols
}

// OrderUpdate has no total: the total is only ever recomputed from items.
type OrderUpdate struct {
	BranchID   *uint   `json:"branch_id" validate:"omitempty,min=1"`
	EmployeeID *uint   `json:"employee_id" validate:"omitempty,min=1"`
	Status     *string `json:"status"`
}

func (u OrderUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColOrderBranchID, u.BranchID)
	put(cols, ColOrderEmployeeID, u.EmployeeID)
	put(cols, ColOrderStatus, u.Status)
	return cols
}

type SupplierUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Email   *string `json:"email" validate:"omitempty,email,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

func (u SupplierUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColSupplierName, u.Name)
	put(cols, ColSupplierPhone, u.Phone)
	put(cols, ColSupplierEmail, u.Email)
	put(cols, ColSupplierAddress, u.Address)
	return cols
}

// InventoryUpdate has no quantity: stock moves only through deltas.
type InventoryUpdate struct {
	ItemName *string `json:"item_name" validate:"omitempty,min=1,max=100"`
	Unit     *string `json:"unit" validate:"omitempty,min=1,max=20"`
}

func (u InventoryUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColInventoryItemName, u.ItemName)
	put(cols, ColInventoryUnit, u.Unit)
	return cols
}

type SupplyOrderUpdate struct {
	Status   *string `json:"status" validate:"omitempty,min=1,max=20"`
	BranchID *uint   `json:"branch_id" validate:"omitempty,min=1"`
}

func (u SupplyOrderUpdate) Columns() map[Column]any {
	cols := map[Column]any{}
	put(cols, ColSupplyStatus, u.Status)
	put(cols, ColSupplyBranchID, u.BranchID)
	return cols
}
