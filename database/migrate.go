package database

import (
	"context"
	"fmt"

	"github.com/KidawR/MainProgect/docstore"
	"github.com/KidawR/MainProgect/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tables lists every relational model, parents before children.
var Tables = []any{
	&models.Branch{},
	&models.Customer{},
	&models.Employee{},
	&models.EmployeeBranch{},
	&models.MenuCategory{},
	&models.MenuItem{},
	&models.MenuCategoryItem{},
	&models.Order{},
	&models.OrderItem{},
	&models.Inventory{},
	&models.Supplier{},
	&models.SupplierMenuItem{},
	&models.SupplyOrder{},
	&models.SupplyOrderItem{},
}

// DefaultBranches are inserted on first start so orders and stock have a
// place to belong to.
var DefaultBranches = []models.Branch{
	{BranchID: 1, Name: "Кофейня на Тверской", City: "Москва", Address: "ул. Тверская, 12"},
	{BranchID: 2, Name: "Кофейня на Невском", City: "Санкт-Петербург", Address: "Невский пр., 48"},
}

func Migrate(db *gorm.DB, log *logrus.Logger) error {
	if err := db.AutoMigrate(Tables...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("AutoMigrate completed.")
	return nil
}

// SeedBranches inserts branches that are not there yet. Existing rows are
// left as they are.
func SeedBranches(db *gorm.DB, branches []models.Branch, log *logrus.Logger) error {
	if len(branches) == 0 {
		return nil
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&branches)
	if res.Error != nil {
		return fmt.Errorf("seed branches: %w", res.Error)
	}
	log.WithField("inserted", res.RowsAffected).Info("branches seeded")
	return nil
}

// EnsureMongoIndexes creates the document store indexes.
func EnsureMongoIndexes(ctx context.Context, store *docstore.MongoStore, log *logrus.Logger) error {
	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}
	log.Info("mongo indexes ready")
	return nil
}
