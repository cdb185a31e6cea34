package repository

import (
	"context"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/models"
	"gorm.io/gorm"
)

// AddCustomer registers a customer and returns the new id.
func (r *Repository) AddCustomer(ctx context.Context, in models.NewCustomer) (uint, error) {
	const op = "repository.AddCustomer"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}

	customer := models.Customer{
		Name:             in.Name,
		Phone:            in.Phone,
		Email:            in.Email,
		RegistrationDate: r.now().UTC(),
	}
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		return tx.Create(&customer).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(customer.CustomerID, "add_customer", audit.Fields{
		"name":  in.Name,
		"phone": in.Phone,
		"email": in.Email,
	})
	return customer.CustomerID, nil
}

func (r *Repository) GetCustomers(ctx context.Context) ([]models.Customer, error) {
	out := []models.Customer{}
	err := r.read(ctx, "repository.GetCustomers", func(db *gorm.DB) error {
		return db.Order("customer_id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetCustomer(ctx context.Context, id uint) (*models.Customer, bool, error) {
	return findOne[models.Customer](ctx, r, "repository.GetCustomer", id)
}

func (r *Repository) UpdateCustomer(ctx context.Context, id uint, u models.CustomerUpdate) error {
	details, err := r.updateByID(ctx, "repository.UpdateCustomer", customers, id, u, nil)
	if err != nil {
		return err
	}
	r.record(id, "update_customer", details)
	return nil
}

// DeleteCustomer refuses while the customer has orders.
func (r *Repository) DeleteCustomer(ctx context.Context, id uint) error {
	const op = "repository.DeleteCustomer"
	err := r.deleteByID(ctx, op, customers, id, func(tx *gorm.DB) error {
		return restrict(tx, op, &models.Order{}, "customer_id", id, "orders")
	})
	if err != nil {
		return err
	}
	r.record(id, "delete_customer", audit.Fields{"customer_id": id})
	return nil
}
