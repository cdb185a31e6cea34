package repository

import (
	"context"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) AddSupplier(ctx context.Context, in models.NewSupplier) (uint, error) {
	const op = "repository.AddSupplier"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}

	supplier := models.Supplier{
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		return tx.Create(&supplier).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(0, "add_supplier", audit.Fields{
		"supplier_id": supplier.SupplierID,
		"name":        in.Name,
		"phone":       in.Phone,
	})
	return supplier.SupplierID, nil
}

func (r *Repository) GetSuppliers(ctx context.Context) ([]models.Supplier, error) {
	out := []models.Supplier{}
	err := r.read(ctx, "repository.GetSuppliers", func(db *gorm.DB) error {
		return db.Order("supplier_id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetSupplier(ctx context.Context, id uint) (*models.Supplier, bool, error) {
	return findOne[models.Supplier](ctx, r, "repository.GetSupplier", id)
}

func (r *Repository) UpdateSupplier(ctx context.Context, id uint, u models.SupplierUpdate) error {
	details, err := r.updateByID(ctx, "repository.UpdateSupplier", suppliers, id, u, nil)
	if err != nil {
		return err
	}
	r.record(0, "update_supplier", details)
	return nil
}

// DeleteSupplier refuses while supply orders reference the supplier and
// drops its item links otherwise.
func (r *Repository) DeleteSupplier(ctx context.Context, id uint) error {
	const op = "repository.DeleteSupplier"
	err := r.deleteByID(ctx, op, suppliers, id, func(tx *gorm.DB) error {
		if err := restrict(tx, op, &models.SupplyOrder{}, "supplier_id", id, "supply orders"); err != nil {
			return err
		}
		return tx.Where("supplier_id = ?", id).Delete(&models.SupplierMenuItem{}).Error
	})
	if err != nil {
		return err
	}
	r.record(0, "delete_supplier", audit.Fields{"supplier_id": id})
	return nil
}

// LinkSupplierItem records that the supplier delivers the item at
// supplyPrice. Linking an existing pair again is a no-op and keeps the
// first price.
func (r *Repository) LinkSupplierItem(ctx context.Context, supplierID, itemID uint, supplyPrice decimal.Decimal) error {
	const op = "repository.LinkSupplierItem"
	if err := nonNegative(op, "supply_price", supplyPrice); err != nil {
		return err
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, suppliers, supplierID); err != nil {
			return err
		}
		if err := mustExist(tx, op, menuItems, itemID); err != nil {
			return err
		}
		link := models.SupplierMenuItem{
			SupplierID:  supplierID,
			ItemID:      itemID,
			SupplyPrice: supplyPrice,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
	if err != nil {
		return err
	}

	r.record(0, "link_supplier_item", audit.Fields{
		"supplier_id":  supplierID,
		"item_id":      itemID,
		"supply_price": supplyPrice,
	})
	return nil
}

// GetItemsBySupplier returns the supplier's items with their supply price.
func (r *Repository) GetItemsBySupplier(ctx context.Context, supplierID uint) ([]models.SupplierItem, error) {
	out := []models.SupplierItem{}
	err := r.read(ctx, "repository.GetItemsBySupplier", func(db *gorm.DB) error {
		return db.Table("menu_items").
			Select("menu_items.*, smi.supply_price").
			Joins("JOIN supplier_menu_items smi ON smi.item_id = menu_items.item_id").
			Where("smi.supplier_id = ?", supplierID).
			Scan(&out).Error
	})
	return out, err
}

// GetSupplierItems is the short price list of a supplier: item name and
// supply price.
func (r *Repository) GetSupplierItems(ctx context.Context, supplierID uint) ([]models.SupplierPrice, error) {
	out := []models.SupplierPrice{}
	err := r.read(ctx, "repository.GetSupplierItems", func(db *gorm.DB) error {
		return db.Table("supplier_menu_items AS smi").
			Select("mi.name, smi.supply_price").
			Joins("JOIN menu_items mi ON smi.item_id = mi.item_id").
			Where("smi.supplier_id = ?", supplierID).
			Scan(&out).Error
	})
	return out, err
}

func (r *Repository) GetSuppliersByItem(ctx context.Context, itemID uint) ([]models.Supplier, error) {
	out := []models.Supplier{}
	err := r.read(ctx, "repository.GetSuppliersByItem", func(db *gorm.DB) error {
		return db.Model(&models.Supplier{}).
			Select("suppliers.*").
			Joins("JOIN supplier_menu_items smi ON smi.supplier_id = suppliers.supplier_id").
			Where("smi.item_id = ?", itemID).
			Find(&out).Error
	})
	return out, err
}
