package repository

import (
	"context"
	"errors"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/errs"
	"github.com/KidawR/MainProgect/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreateOrder opens an order in status "created". The total may be a
// placeholder until UpdateOrderTotal recomputes it.
func (r *Repository) CreateOrder(ctx context.Context, in models.NewOrder) (uint, error) {
	const op = "repository.CreateOrder"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}
	if err := nonNegative(op, "total_amount", in.TotalAmount); err != nil {
		return 0, err
	}

	order := models.Order{
		CustomerID:  in.CustomerID,
		BranchID:    in.BranchID,
		EmployeeID:  in.EmployeeID,
		TotalAmount: in.TotalAmount,
		Status:      models.OrderStatusCreated,
		OrderTime:   r.now().UTC(),
	}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, customers, in.CustomerID); err != nil {
			return err
		}
		if err := mustExist(tx, op, branches, in.BranchID); err != nil {
			return err
		}
		if err := mustExist(tx, op, employees, in.EmployeeID); err != nil {
			return err
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(in.CustomerID, "create_order", audit.Fields{
		"order_id":     order.OrderID,
		"total_amount": in.TotalAmount,
	})
	return order.OrderID, nil
}

// GetOrders lists orders without their items, newest first.
func (r *Repository) GetOrders(ctx context.Context) ([]models.Order, error) {
	out := []models.Order{}
	err := r.read(ctx, "repository.GetOrders", func(db *gorm.DB) error {
		return db.Order("order_time DESC").Order("order_id DESC").Find(&out).Error
	})
	return out, err
}

// GetOrder loads one order with its items.
func (r *Repository) GetOrder(ctx context.Context, id uint) (*models.Order, bool, error) {
	return findOne[models.Order](ctx, r, "repository.GetOrder", id, preloadOrderItems)
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_item_id")
	})
}

// GetOrdersByCustomer returns the customer's orders, most recent first.
// Orders placed at the same instant come newest id first.
func (r *Repository) GetOrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	out := []models.Order{}
	err := r.read(ctx, "repository.GetOrdersByCustomer", func(db *gorm.DB) error {
		return db.Where("customer_id = ?", customerID).
			Order("order_time DESC").
			Order("order_id DESC").
			Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	out := []models.OrderItem{}
	err := r.read(ctx, "repository.GetOrderItems", func(db *gorm.DB) error {
		return db.Where("order_id = ?", orderID).Order("order_item_id").Find(&out).Error
	})
	return out, err
}

// UpdateOrder applies a partial update. A status change obeys the same
// rules as UpdateOrderStatus, and a new branch or employee must exist.
func (r *Repository) UpdateOrder(ctx context.Context, id uint, u models.OrderUpdate) error {
	const op = "repository.UpdateOrder"

	details, err := r.updateByID(ctx, op, orders, id, u, func(tx *gorm.DB) error {
		if u.BranchID != nil {
			if err := mustExist(tx, op, branches, *u.BranchID); err != nil {
				return err
			}
		}
		if u.EmployeeID != nil {
			if err := mustExist(tx, op, employees, *u.EmployeeID); err != nil {
				return err
			}
		}
		if u.Status == nil {
			return nil
		}
		from, err := checkTransition(tx, op, id, *u.Status)
		if err != nil {
			return err
		}
		return applyStatus(tx, op, id, from, *u.Status)
	})
	if err != nil {
		return err
	}
	r.record(0, "update_order", details)
	return nil
}

// UpdateOrderStatus moves the order along created -> preparing ->
// completed, or to cancelled from any open status. Setting the current
// status again is accepted and changes nothing.
func (r *Repository) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	const op = "repository.UpdateOrderStatus"
	if !models.ValidOrderStatus(status) {
		return errs.Validationf(op, "unknown order status %q", status)
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		from, err := checkTransition(tx, op, id, status)
		if err != nil {
			return err
		}
		return applyStatus(tx, op, id, from, status)
	})
	if err != nil {
		return err
	}

	r.record(0, "update_order_status", audit.Fields{"order_id": id, "status": status})
	return nil
}

// checkTransition locks the order row and returns its current status once
// the move to "to" is known to be allowed.
func checkTransition(tx *gorm.DB, op string, id uint, to string) (string, error) {
	var order models.Order
	err := lockForUpdate(tx).Select("order_id", "status").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errs.NotFoundf(op, "order %d not found", id)
	}
	if err != nil {
		return "", err
	}
	if !models.CanTransition(order.Status, to) {
		return "", errs.Validationf(op, "order %d cannot move from %q to %q", id, order.Status, to)
	}
	return order.Status, nil
}

// applyStatus writes the new status only while the row still holds from.
func applyStatus(tx *gorm.DB, op string, id uint, from, to string) error {
	if from == to {
		return nil
	}
	res := tx.Model(&models.Order{}).
		Where("order_id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.Validationf(op, "order %d is no longer %q", id, from)
	}
	return nil
}

// DeleteOrder removes the order and its items together.
func (r *Repository) DeleteOrder(ctx context.Context, id uint) error {
	const op = "repository.DeleteOrder"
	err := r.deleteByID(ctx, op, orders, id, func(tx *gorm.DB) error {
		return tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error
	})
	if err != nil {
		return err
	}
	r.record(0, "delete_order", audit.Fields{"order_id": id})
	return nil
}

// AddOrderItem copies the current menu price into a new order item. The
// lookup and the insert share one transaction.
func (r *Repository) AddOrderItem(ctx context.Context, orderID, itemID uint, quantity int) (*models.OrderItem, error) {
	const op = "repository.AddOrderItem"
	if err := positive(op, "quantity", quantity); err != nil {
		return nil, err
	}

	item := models.OrderItem{OrderID: orderID, ItemID: itemID, Quantity: quantity}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, orders, orderID); err != nil {
			return err
		}

		var menuItem models.MenuItem
		err := lockForShare(tx).Select("item_id", "price").First(&menuItem, itemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFoundf(op, "menu item %d not found", itemID)
		}
		if err != nil {
			return err
		}

		item.Price = menuItem.Price
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}

	r.record(0, "add_order_item", audit.Fields{
		"order_id": orderID,
		"item_id":  itemID,
		"quantity": quantity,
		"price":    item.Price,
	})
	return &item, nil
}

// UpdateOrderTotal recomputes the total as SUM(quantity * price) over the
// order's items, writes it back and returns it. No items means zero.
func (r *Repository) UpdateOrderTotal(ctx context.Context, orderID uint) (decimal.Decimal, error) {
	const op = "repository.UpdateOrderTotal"

	var total decimal.Decimal
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, orders, orderID); err != nil {
			return err
		}

		row := tx.Model(&models.OrderItem{}).
			Select("COALESCE(SUM(quantity * price), 0)").
			Where("order_id = ?", orderID).
			Row()
		if err := row.Scan(&total); err != nil {
			return err
		}

		return tx.Model(&models.Order{}).
			Where("order_id = ?", orderID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return decimal.Zero, err
	}

	r.record(0, "update_order_total", audit.Fields{"order_id": orderID, "total_amount": total})
	return total, nil
}
