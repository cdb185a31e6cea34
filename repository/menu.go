package repository

import (
	"context"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) AddMenuCategory(ctx context.Context, in models.NewMenuCategory) (uint, error) {
	const op = "repository.AddMenuCategory"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}

	category := models.MenuCategory{Name: in.Name, Description: in.Description}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		return tx.Create(&category).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(0, "add_menu_category", audit.Fields{
		"category_id": category.CategoryID,
		"name":        in.Name,
		"description": in.Description,
	})
	return category.CategoryID, nil
}

func (r *Repository) GetMenuCategories(ctx context.Context) ([]models.MenuCategory, error) {
	out := []models.MenuCategory{}
	err := r.read(ctx, "repository.GetMenuCategories", func(db *gorm.DB) error {
		return db.Order("category_id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetMenuCategory(ctx context.Context, id uint) (*models.MenuCategory, bool, error) {
	return findOne[models.MenuCategory](ctx, r, "repository.GetMenuCategory", id)
}

func (r *Repository) UpdateMenuCategory(ctx context.Context, id uint, u models.MenuCategoryUpdate) error {
	details, err := r.updateByID(ctx, "repository.UpdateMenuCategory", categories, id, u, nil)
	if err != nil {
		return err
	}
	r.record(0, "update_menu_category", details)
	return nil
}

// DeleteMenuCategory drops the category and its item links. The items
// themselves stay.
func (r *Repository) DeleteMenuCategory(ctx context.Context, id uint) error {
	const op = "repository.DeleteMenuCategory"
	err := r.deleteByID(ctx, op, categories, id, func(tx *gorm.DB) error {
		return tx.Where("category_id = ?", id).Delete(&models.MenuCategoryItem{}).Error
	})
	if err != nil {
		return err
	}
	r.record(0, "delete_menu_category", audit.Fields{"category_id": id})
	return nil
}

func (r *Repository) AddMenuItem(ctx context.Context, in models.NewMenuItem) (uint, error) {
	const op = "repository.AddMenuItem"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}
	if err := nonNegative(op, "price", in.Price); err != nil {
		return 0, err
	}

	item := models.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Calories:    in.Calories,
		IsAvailable: true,
		ImageURL:    in.ImageURL,
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		return tx.Create(&item).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(0, "add_menu_item", audit.Fields{
		"item_id": item.ItemID,
		"name":    in.Name,
		"price":   in.Price,
	})
	return item.ItemID, nil
}

func (r *Repository) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	err := r.read(ctx, "repository.GetMenuItems", func(db *gorm.DB) error {
		return db.Order("item_id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, bool, error) {
	return findOne[models.MenuItem](ctx, r, "repository.GetMenuItem", id)
}

// UpdateMenuItem changes the item. Prices already copied into order items
// are not touched.
func (r *Repository) UpdateMenuItem(ctx context.Context, id uint, u models.MenuItemUpdate) error {
	const op = "repository.UpdateMenuItem"
	if u.Price != nil {
		if err := nonNegative(op, "price", *u.Price); err != nil {
			return err
		}
	}

	details, err := r.updateByID(ctx, op, menuItems, id, u, nil)
	if err != nil {
		return err
	}
	r.record(id, "update_menu_item", details)
	return nil
}

// RemoveMenuItem refuses while orders or supply orders contain the item.
// Category and supplier links are dropped with it.
func (r *Repository) RemoveMenuItem(ctx context.Context, id uint) error {
	const op = "repository.RemoveMenuItem"
	err := r.deleteByID(ctx, op, menuItems, id, func(tx *gorm.DB) error {
		if err := restrict(tx, op, &models.OrderItem{}, "item_id", id, "order items"); err != nil {
			return err
		}
		if err := restrict(tx, op, &models.SupplyOrderItem{}, "item_id", id, "supply order items"); err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&models.MenuCategoryItem{}).Error; err != nil {
			return err
		}
		return tx.Where("item_id = ?", id).Delete(&models.SupplierMenuItem{}).Error
	})
	if err != nil {
		return err
	}
	r.record(id, "remove_menu_item", audit.Fields{"item_id": id})
	return nil
}

// GetMenu lists every item with its category name, ordered by item id.
// Uncategorised items carry a nil category.
func (r *Repository) GetMenu(ctx context.Context) ([]models.MenuEntry, error) {
	out := []models.MenuEntry{}
	err := r.read(ctx, "repository.GetMenu", func(db *gorm.DB) error {
		return db.Table("menu_items AS mi").
			Select("mi.item_id, mi.name, mi.price, mi.is_available, mc.name AS category").
			Joins("LEFT JOIN menu_category_items mci ON mi.item_id = mci.item_id").
			Joins("LEFT JOIN menu_categories mc ON mci.category_id = mc.category_id").
			Order("mi.item_id").
			Scan(&out).Error
	})
	return out, err
}

// AssignItemToCategory is idempotent.
func (r *Repository) AssignItemToCategory(ctx context.Context, itemID, categoryID uint) error {
	const op = "repository.AssignItemToCategory"
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, menuItems, itemID); err != nil {
			return err
		}
		if err := mustExist(tx, op, categories, categoryID); err != nil {
			return err
		}
		link := models.MenuCategoryItem{CategoryID: categoryID, ItemID: itemID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
	if err != nil {
		return err
	}
	r.record(0, "assign_item_to_category", audit.Fields{"item_id": itemID, "category_id": categoryID})
	return nil
}

func (r *Repository) GetItemsByCategory(ctx context.Context, categoryID uint) ([]models.MenuItem, error) {
	out := []models.MenuItem{}
	err := r.read(ctx, "repository.GetItemsByCategory", func(db *gorm.DB) error {
		return db.Model(&models.MenuItem{}).
			Select("menu_items.*").
			Joins("JOIN menu_category_items mci ON mci.item_id = menu_items.item_id").
			Where("mci.category_id = ?", categoryID).
			Find(&out).Error
	})
	return out, err
}
