package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SupplierController struct {
	Repo *repository.Repository
}

func NewSupplierController(repo *repository.Repository) *SupplierController {
	return &SupplierController{Repo: repo}
}

func (sc *SupplierController) GetAllSuppliers(c *gin.Context) {
	suppliers, err := sc.Repo.GetSuppliers(c.Request.Context())
	respondList(c, "List of suppliers", suppliers, err)
}

func (sc *SupplierController) CreateSupplier(c *gin.Context) {
	var req models.NewSupplier
	if !decode(c, &req) {
		return
	}
	id, err := sc.Repo.AddSupplier(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Supplier created", created{ID: id}, err)
}

func (sc *SupplierController) GetSupplierByID(c *gin.Context) {
	id, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	supplier, found, err := sc.Repo.GetSupplier(c.Request.Context(), id)
	respondOne(c, "Supplier", supplier, found, err)
}

func (sc *SupplierController) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	var req models.SupplierUpdate
	if !decode(c, &req) {
		return
	}
	err := sc.Repo.UpdateSupplier(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Supplier updated", nil, err)
}

// DeleteSupplier -> refused while supply orders reference the supplier
func (sc *SupplierController) DeleteSupplier(c *gin.Context) {
	id, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	err := sc.Repo.DeleteSupplier(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Supplier deleted", nil, err)
}

// GetSupplierItems -> full menu items with the supplier's price
func (sc *SupplierController) GetSupplierItems(c *gin.Context) {
	id, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	items, err := sc.Repo.GetItemsBySupplier(c.Request.Context(), id)
	respondList(c, "Items of supplier", items, err)
}

// GetSupplierPrices -> name and supply price only
func (sc *SupplierController) GetSupplierPrices(c *gin.Context) {
	id, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	prices, err := sc.Repo.GetSupplierItems(c.Request.Context(), id)
	respondList(c, "Price list of supplier", prices, err)
}

// LinkItem -> linking an existing pair again replaces its supply price
func (sc *SupplierController) LinkItem(c *gin.Context) {
	id, ok := pathID(c, "supplier_id")
	if !ok {
		return
	}
	var req struct {
		ItemID      uint            `json:"item_id"`
		SupplyPrice decimal.Decimal `json:"supply_price"`
	}
	if !decode(c, &req) {
		return
	}
	err := sc.Repo.LinkSupplierItem(c.Request.Context(), id, req.ItemID, req.SupplyPrice)
	respondDone(c, http.StatusOK, "Item linked to supplier", nil, err)
}
