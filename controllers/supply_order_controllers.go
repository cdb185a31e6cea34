package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
)

type SupplyOrderController struct {
	Repo *repository.Repository
}

func NewSupplyOrderController(repo *repository.Repository) *SupplyOrderController {
	return &SupplyOrderController{Repo: repo}
}

func (sc *SupplyOrderController) GetAllSupplyOrders(c *gin.Context) {
	branchID, ok := queryID(c, "branch_id")
	if !ok {
		return
	}
	orders, err := sc.Repo.GetSupplyOrders(c.Request.Context(), branchID)
	respondList(c, "List of supply orders", orders, err)
}

// CreateSupplyOrder -> status defaults to in progress
func (sc *SupplyOrderController) CreateSupplyOrder(c *gin.Context) {
	var req models.NewSupplyOrder
	if !decode(c, &req) {
		return
	}
	id, err := sc.Repo.CreateSupplyOrder(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Supply order created", created{ID: id}, err)
}

func (sc *SupplyOrderController) GetSupplyOrderByID(c *gin.Context) {
	id, ok := pathID(c, "supply_order_id")
	if !ok {
		return
	}
	order, found, err := sc.Repo.GetSupplyOrder(c.Request.Context(), id)
	respondOne(c, "Supply order", order, found, err)
}

func (sc *SupplyOrderController) UpdateSupplyOrder(c *gin.Context) {
	id, ok := pathID(c, "supply_order_id")
	if !ok {
		return
	}
	var req models.SupplyOrderUpdate
	if !decode(c, &req) {
		return
	}
	err := sc.Repo.UpdateSupplyOrder(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Supply order updated", nil, err)
}

func (sc *SupplyOrderController) DeleteSupplyOrder(c *gin.Context) {
	id, ok := pathID(c, "supply_order_id")
	if !ok {
		return
	}
	err := sc.Repo.DeleteSupplyOrder(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Supply order deleted", nil, err)
}

func (sc *SupplyOrderController) AddItem(c *gin.Context) {
	id, ok := pathID(c, "supply_order_id")
	if !ok {
		return
	}
	var req struct {
		ItemID   uint `json:"item_id"`
		Quantity int  `json:"quantity"`
	}
	if !decode(c, &req) {
		return
	}
	lineID, err := sc.Repo.AddItemToSupply(c.Request.Context(), id, req.ItemID, req.Quantity)
	respondDone(c, http.StatusCreated, "Item added to supply order", created{ID: lineID}, err)
}
