package repository

import (
	"context"
	"testing"

	"github.com/KidawR/MainProgect/errs"
	"github.com/KidawR/MainProgect/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) addSupplier(t *testing.T, name string) uint {
	t.Helper()
	id, err := f.repo.AddSupplier(context.Background(), models.NewSupplier{
		Name:    name,
		Phone:   "84951234567",
		Email:   "supply@example.com",
		Address: "Москва, ул. Складская, 5",
	})
	require.NoError(t, err)
	return id
}

func TestSupplierCRUD(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()
	id := f.addSupplier(t, "Молочная ферма")

	require.NoError(t, f.repo.UpdateSupplier(ctx, id, models.SupplierUpdate{Phone: ptr("84950000000")}))

	supplier, ok, err := f.repo.GetSupplier(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "84950000000", supplier.Phone)

	list, err := f.repo.GetSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	latte := f.addMenuItem(t, "Латте", 180)
	require.NoError(t, f.repo.LinkSupplierItem(ctx, id, latte, decimal.NewFromInt(60)))
	require.NoError(t, f.repo.DeleteSupplier(ctx, id))

	var links int64
	require.NoError(t, f.db.Model(&models.SupplierMenuItem{}).Count(&links).Error)
	assert.Zero(t, links)
}

func TestDeleteSupplierWithSupplyOrdersIsRestricted(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()
	id := f.addSupplier(t, "Кофейные зёрна")

	_, err := f.repo.CreateSupplyOrder(ctx, models.NewSupplyOrder{SupplierID: id, BranchID: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, f.repo.DeleteSupplier(ctx, id), errs.ErrValidation)
}

func TestSupplierItemLinks(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()

	farm := f.addSupplier(t, "Молочная ферма")
	bakery := f.addSupplier(t, "Пекарня")
	latte := f.addMenuItem(t, "Латте", 180)
	croissant := f.addMenuItem(t, "Круассан", 150)

	require.NoError(t, f.repo.LinkSupplierItem(ctx, farm, latte, decimal.NewFromInt(60)))
	require.NoError(t, f.repo.LinkSupplierItem(ctx, farm, latte, decimal.NewFromInt(70)))
	require.NoError(t, f.repo.LinkSupplierItem(ctx, bakery, croissant, decimal.RequireFromString("45.5")))
	require.NoError(t, f.repo.LinkSupplierItem(ctx, bakery, latte, decimal.NewFromInt(65)))

	items, err := f.repo.GetItemsBySupplier(ctx, farm)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Латте", items[0].Name)
	assert.Equal(t, "60", items[0].SupplyPrice.String(), "second link of the same pair is ignored")

	prices, err := f.repo.GetSupplierItems(ctx, bakery)
	require.NoError(t, err)
	assert.Len(t, prices, 2)

	suppliers, err := f.repo.GetSuppliersByItem(ctx, latte)
	require.NoError(t, err)
	assert.Len(t, suppliers, 2)

	none, err := f.repo.GetItemsBySupplier(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	err = f.repo.LinkSupplierItem(ctx, farm, croissant, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, errs.ErrValidation)

	entry := f.lastEntry(t)
	assert.Equal(t, "link_supplier_item", entry.Action)
	assert.Equal(t, 65.0, entry.Details["supply_price"])
}

func TestSupplyOrders(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()

	supplierID := f.addSupplier(t, "Молочная ферма")
	milk := f.addMenuItem(t, "Латте", 180)
	cream := f.addMenuItem(t, "Раф", 220)

	id, err := f.repo.CreateSupplyOrder(ctx, models.NewSupplyOrder{SupplierID: supplierID, BranchID: 1})
	require.NoError(t, err)

	_, err = f.repo.AddItemToSupply(ctx, id, milk, 10)
	require.NoError(t, err)
	_, err = f.repo.AddItemToSupply(ctx, id, cream, 5)
	require.NoError(t, err)

	order, ok, err := f.repo.GetSupplyOrder(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.SupplyStatusInProgress, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 10, order.Items[0].Quantity)
	assert.Equal(t, 5, order.Items[1].Quantity)

	require.NoError(t, f.repo.UpdateSupplyOrder(ctx, id, models.SupplyOrderUpdate{Status: ptr("delivered")}))

	list, err := f.repo.GetSupplyOrders(ctx, ptr(uint(1)))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "delivered", list[0].Status)

	other, err := f.repo.GetSupplyOrders(ctx, ptr(uint(2)))
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, f.repo.DeleteSupplyOrder(ctx, id))
	_, ok, err = f.repo.GetSupplyOrder(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	var items int64
	require.NoError(t, f.db.Model(&models.SupplyOrderItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestSupplyOrderAbsent(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()
	milk := f.addMenuItem(t, "Латте", 180)

	order, ok, err := f.repo.GetSupplyOrder(ctx, 404)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, order)

	_, err = f.repo.AddItemToSupply(ctx, 404, milk, 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	var items int64
	require.NoError(t, f.db.Model(&models.SupplyOrderItem{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestSupplyOrderCustomStatusAndEmptyItems(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()
	supplierID := f.addSupplier(t, "Пекарня")

	id, err := f.repo.CreateSupplyOrder(ctx, models.NewSupplyOrder{SupplierID: supplierID, BranchID: 2, Status: "draft"})
	require.NoError(t, err)

	order, ok, err := f.repo.GetSupplyOrder(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "draft", order.Status)
	assert.NotNil(t, order.Items)
	assert.Empty(t, order.Items)

	_, err = f.repo.AddItemToSupply(ctx, id, 1, 0)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestUpdateSupplyOrderRequiresBranch(t *testing.T) {
	f := setupRepository(t)
	ctx := context.Background()
	id, err := f.repo.CreateSupplyOrder(ctx, models.NewSupplyOrder{SupplierID: f.addSupplier(t, "Молочная ферма"), BranchID: 1})
	require.NoError(t, err)

	err = f.repo.UpdateSupplyOrder(ctx, id, models.SupplyOrderUpdate{BranchID: ptr(uint(999))})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, f.repo.UpdateSupplyOrder(ctx, id, models.SupplyOrderUpdate{BranchID: ptr(uint(2))}))
	order, ok, err := f.repo.GetSupplyOrder(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint(2), order.BranchID)
}
