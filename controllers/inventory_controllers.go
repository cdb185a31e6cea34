package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InventoryController struct {
	Repo *repository.Repository
}

func NewInventoryController(repo *repository.Repository) *InventoryController {
	return &InventoryController{Repo: repo}
}

func (ic *InventoryController) GetInventory(c *gin.Context) {
	branchID, ok := queryID(c, "branch_id")
	if !ok {
		return
	}
	rows, err := ic.Repo.GetInventory(c.Request.Context(), branchID)
	respondList(c, "Inventory", rows, err)
}

func (ic *InventoryController) CreateInventory(c *gin.Context) {
	var req models.NewInventory
	if !decode(c, &req) {
		return
	}
	id, err := ic.Repo.CreateInventory(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Inventory record created", created{ID: id}, err)
}

func (ic *InventoryController) GetInventoryByID(c *gin.Context) {
	id, ok := pathID(c, "inventory_id")
	if !ok {
		return
	}
	row, found, err := ic.Repo.GetInventoryItem(c.Request.Context(), id)
	respondOne(c, "Inventory record", row, found, err)
}

func (ic *InventoryController) UpdateInventory(c *gin.Context) {
	id, ok := pathID(c, "inventory_id")
	if !ok {
		return
	}
	var req models.InventoryUpdate
	if !decode(c, &req) {
		return
	}
	err := ic.Repo.UpdateInventoryRecord(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Inventory record updated", nil, err)
}

func (ic *InventoryController) DeleteInventory(c *gin.Context) {
	id, ok := pathID(c, "inventory_id")
	if !ok {
		return
	}
	err := ic.Repo.DeleteInventory(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Inventory record deleted", nil, err)
}

// AdjustInventory -> adds delta (may be negative) to one branch's stock of an item
func (ic *InventoryController) AdjustInventory(c *gin.Context) {
	var req struct {
		BranchID uint            `json:"branch_id"`
		ItemName string          `json:"item_name"`
		Delta    decimal.Decimal `json:"delta"`
	}
	if !decode(c, &req) {
		return
	}
	err := ic.Repo.UpdateInventory(c.Request.Context(), req.BranchID, req.ItemName, req.Delta)
	respondDone(c, http.StatusOK, "Inventory adjusted", nil, err)
}
