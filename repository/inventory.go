package repository

import (
	"context"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/errs"
	"github.com/KidawR/MainProgect/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateInventory starts tracking itemName at a branch. The pair
// (branch, item name) is unique.
func (r *Repository) CreateInventory(ctx context.Context, in models.NewInventory) (uint, error) {
	const op = "repository.CreateInventory"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}
	if err := nonNegative(op, "quantity", in.Quantity); err != nil {
		return 0, err
	}

	inv := models.Inventory{
		BranchID:    in.BranchID,
		ItemName:    in.ItemName,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		LastUpdated: r.now().UTC(),
	}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, branches, in.BranchID); err != nil {
			return err
		}
		var n int64
		err := tx.Model(&models.Inventory{}).
			Where("branch_id = ? AND item_name = ?", in.BranchID, in.ItemName).
			Count(&n).Error
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.Validationf(op, "branch %d already tracks %q", in.BranchID, in.ItemName)
		}
		return tx.Create(&inv).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(0, "create_inventory", audit.Fields{
		"inventory_id": inv.InventoryID,
		"branch_id":    in.BranchID,
		"item_name":    in.ItemName,
		"quantity":     in.Quantity,
	})
	return inv.InventoryID, nil
}

func (r *Repository) GetInventory(ctx context.Context, branchID *uint) ([]models.Inventory, error) {
	out := []models.Inventory{}
	err := r.read(ctx, "repository.GetInventory", func(db *gorm.DB) error {
		if branchID != nil {
			db = db.Where("branch_id = ?", *branchID)
		}
		return db.Order("inventory_id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetInventoryItem(ctx context.Context, id uint) (*models.Inventory, bool, error) {
	return findOne[models.Inventory](ctx, r, "repository.GetInventoryItem", id)
}

// UpdateInventoryRecord renames an item or changes its unit. Quantity
// only moves through UpdateInventory.
func (r *Repository) UpdateInventoryRecord(ctx context.Context, id uint, u models.InventoryUpdate) error {
	const op = "repository.UpdateInventoryRecord"
	now := r.now().UTC()

	details, err := r.updateByID(ctx, op, inventories, id, u, func(tx *gorm.DB) error {
		return tx.Model(&models.Inventory{}).Where("inventory_id = ?", id).Update("last_updated", now).Error
	})
	if err != nil {
		return err
	}
	r.record(0, "update_inventory_record", details)
	return nil
}

func (r *Repository) DeleteInventory(ctx context.Context, id uint) error {
	err := r.deleteByID(ctx, "repository.DeleteInventory", inventories, id, nil)
	if err != nil {
		return err
	}
	r.record(0, "delete_inventory", audit.Fields{"inventory_id": id})
	return nil
}

// UpdateInventory adds delta (which may be negative) to the stock of
// itemName at a branch in a single UPDATE, so concurrent deltas never
// overwrite each other.
func (r *Repository) UpdateInventory(ctx context.Context, branchID uint, itemName string, delta decimal.Decimal) error {
	const op = "repository.UpdateInventory"
	if itemName == "" {
		return errs.Validationf(op, "item_name is required")
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		res := tx.Model(&models.Inventory{}).
			Where("branch_id = ? AND item_name = ?", branchID, itemName).
			Updates(map[string]any{
				"quantity":     gorm.Expr("quantity + ?", delta),
				"last_updated": r.now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf(op, "no inventory for %q at branch %d", itemName, branchID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.record(0, "update_inventory", audit.Fields{
		"branch_id": branchID,
		"item_name": itemName,
		"delta":     delta,
	})
	return nil
}
