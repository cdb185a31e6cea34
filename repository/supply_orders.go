package repository

import (
	"context"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/models"
	"gorm.io/gorm"
)

// CreateSupplyOrder opens a supply order. An empty status means
// "in_progress".
func (r *Repository) CreateSupplyOrder(ctx context.Context, in models.NewSupplyOrder) (uint, error) {
	const op = "repository.CreateSupplyOrder"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}

	order := models.SupplyOrder{
		SupplierID: in.SupplierID,
		BranchID:   in.BranchID,
		Status:     in.Status,
		OrderDate:  r.now().UTC(),
	}
	if order.Status == "" {
		order.Status = models.SupplyStatusInProgress
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, suppliers, in.SupplierID); err != nil {
			return err
		}
		if err := mustExist(tx, op, branches, in.BranchID); err != nil {
			return err
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(0, "create_supply_order", audit.Fields{
		"supply_order_id": order.SupplyOrderID,
		"supplier_id":     in.SupplierID,
		"branch_id":       in.BranchID,
		"status":          order.Status,
	})
	return order.SupplyOrderID, nil
}

// GetSupplyOrders lists supply orders without items, optionally for one
// branch.
func (r *Repository) GetSupplyOrders(ctx context.Context, branchID *uint) ([]models.SupplyOrder, error) {
	out := []models.SupplyOrder{}
	err := r.read(ctx, "repository.GetSupplyOrders", func(db *gorm.DB) error {
		if branchID != nil {
			db = db.Where("branch_id = ?", *branchID)
		}
		return db.Order("supply_order_id").Find(&out).Error
	})
	return out, err
}

// GetSupplyOrder returns the order with its items. A missing order is
// (nil, false, nil).
func (r *Repository) GetSupplyOrder(ctx context.Context, id uint) (*models.SupplyOrder, bool, error) {
	order, ok, err := findOne[models.SupplyOrder](ctx, r, "repository.GetSupplyOrder", id, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("supply_order_item_id")
		})
	})
	if ok && order.Items == nil {
		order.Items = []models.SupplyOrderItem{}
	}
	return order, ok, err
}

// UpdateSupplyOrder applies a partial update. A new branch must exist.
func (r *Repository) UpdateSupplyOrder(ctx context.Context, id uint, u models.SupplyOrderUpdate) error {
	const op = "repository.UpdateSupplyOrder"
	details, err := r.updateByID(ctx, op, supplyOrders, id, u, func(tx *gorm.DB) error {
		if u.BranchID == nil {
			return nil
		}
		return mustExist(tx, op, branches, *u.BranchID)
	})
	if err != nil {
		return err
	}
	r.record(0, "update_supply_order", details)
	return nil
}

// DeleteSupplyOrder removes the order and its items together.
func (r *Repository) DeleteSupplyOrder(ctx context.Context, id uint) error {
	const op = "repository.DeleteSupplyOrder"
	err := r.deleteByID(ctx, op, supplyOrders, id, func(tx *gorm.DB) error {
		return tx.Where("supply_order_id = ?", id).Delete(&models.SupplyOrderItem{}).Error
	})
	if err != nil {
		return err
	}
	r.record(0, "delete_supply_order", audit.Fields{"supply_order_id": id})
	return nil
}

// AddItemToSupply appends an item to an existing supply order. A missing
// order is a not-found error; the order is never created implicitly.
func (r *Repository) AddItemToSupply(ctx context.Context, supplyOrderID, itemID uint, quantity int) (uint, error) {
	const op = "repository.AddItemToSupply"
	if err := positive(op, "quantity", quantity); err != nil {
		return 0, err
	}

	item := models.SupplyOrderItem{
		SupplyOrderID: supplyOrderID,
		ItemID:        itemID,
		Quantity:      quantity,
	}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, supplyOrders, supplyOrderID); err != nil {
			return err
		}
		if err := mustExist(tx, op, menuItems, itemID); err != nil {
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(0, "add_item_to_supply", audit.Fields{
		"supply_order_id": supplyOrderID,
		"item_id":         itemID,
		"quantity":        quantity,
	})
	return item.SupplyOrderItemID, nil
}
