package repository

import (
	"context"
	"time"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) AddEmployee(ctx context.Context, in models.NewEmployee) (uint, error) {
	const op = "repository.AddEmployee"
	if err := validateStruct(op, in); err != nil {
		return 0, err
	}
	if err := nonNegative(op, "salary", in.Salary); err != nil {
		return 0, err
	}

	employee := models.Employee{
		Name:     in.Name,
		Position: in.Position,
		HireDate: in.HireDate,
		Salary:   in.Salary,
		Email:    in.Email,
		IsActive: true,
	}
	if in.IsActive != nil {
		employee.IsActive = *in.IsActive
	}
	if employee.HireDate.IsZero() {
		employee.HireDate = r.now().UTC().Truncate(24 * time.Hour)
	}

	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		return tx.Create(&employee).Error
	})
	if err != nil {
		return 0, err
	}

	r.record(employee.EmployeeID, "add_employee", audit.Fields{
		"name":     in.Name,
		"position": in.Position,
		"salary":   in.Salary,
	})
	return employee.EmployeeID, nil
}

// GetEmployees lists employees with their branch assignment. An employee
// assigned to several branches appears once per branch; an unassigned one
// appears once with a nil branch. branchID narrows the list to one branch.
func (r *Repository) GetEmployees(ctx context.Context, branchID *uint) ([]models.EmployeeWithBranch, error) {
	out := []models.EmployeeWithBranch{}
	err := r.read(ctx, "repository.GetEmployees", func(db *gorm.DB) error {
		q := db.Table("employees AS e").
			Select("e.*, eb.branch_id").
			Joins("LEFT JOIN employee_branches eb ON e.employee_id = eb.employee_id")
		if branchID != nil {
			q = q.Where("eb.branch_id = ?", *branchID)
		}
		return q.Order("e.employee_id").Order("eb.branch_id").Scan(&out).Error
	})
	return out, err
}

func (r *Repository) GetEmployee(ctx context.Context, id uint) (*models.Employee, bool, error) {
	return findOne[models.Employee](ctx, r, "repository.GetEmployee", id)
}

func (r *Repository) UpdateEmployee(ctx context.Context, id uint, u models.EmployeeUpdate) error {
	const op = "repository.UpdateEmployee"
	if u.Salary != nil {
		if err := nonNegative(op, "salary", *u.Salary); err != nil {
			return err
		}
	}

	details, err := r.updateByID(ctx, op, employees, id, u, nil)
	if err != nil {
		return err
	}
	r.record(id, "update_employee", details)
	return nil
}

// RemoveEmployee refuses while orders reference the employee and drops
// the branch assignments otherwise.
func (r *Repository) RemoveEmployee(ctx context.Context, id uint) error {
	const op = "repository.RemoveEmployee"
	err := r.deleteByID(ctx, op, employees, id, func(tx *gorm.DB) error {
		if err := restrict(tx, op, &models.Order{}, "employee_id", id, "orders"); err != nil {
			return err
		}
		return tx.Where("employee_id = ?", id).Delete(&models.EmployeeBranch{}).Error
	})
	if err != nil {
		return err
	}
	r.record(id, "remove_employee", audit.Fields{"employee_id": id})
	return nil
}

// AssignEmployeeToBranch is idempotent: repeating an existing pair changes
// nothing.
func (r *Repository) AssignEmployeeToBranch(ctx context.Context, employeeID, branchID uint) error {
	const op = "repository.AssignEmployeeToBranch"
	err := r.inTx(ctx, op, func(tx *gorm.DB) error {
		if err := mustExist(tx, op, employees, employeeID); err != nil {
			return err
		}
		if err := mustExist(tx, op, branches, branchID); err != nil {
			return err
		}
		link := models.EmployeeBranch{
			EmployeeID:   employeeID,
			BranchID:     branchID,
			AssignedDate: r.now().UTC(),
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
	})
	if err != nil {
		return err
	}
	r.record(employeeID, "assign_employee_to_branch", audit.Fields{"branch_id": branchID})
	return nil
}

func (r *Repository) GetBranchesByEmployee(ctx context.Context, employeeID uint) ([]models.Branch, error) {
	out := []models.Branch{}
	err := r.read(ctx, "repository.GetBranchesByEmployee", func(db *gorm.DB) error {
		return db.Model(&models.Branch{}).
			Select("cafe_branches.*").
			Joins("JOIN employee_branches eb ON eb.branch_id = cafe_branches.branch_id").
			Where("eb.employee_id = ?", employeeID).
			Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetBranches(ctx context.Context) ([]models.Branch, error) {
	out := []models.Branch{}
	err := r.read(ctx, "repository.GetBranches", func(db *gorm.DB) error {
		return db.Order("branch_id").Find(&out).Error
	})
	return out, err
}

func (r *Repository) GetBranch(ctx context.Context, id uint) (*models.Branch, bool, error) {
	return findOne[models.Branch](ctx, r, "repository.GetBranch", id)
}
