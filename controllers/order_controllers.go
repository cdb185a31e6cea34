package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrderController struct {
	Repo *repository.Repository
}

func NewOrderController(repo *repository.Repository) *OrderController {
	return &OrderController{Repo: repo}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Repo.GetOrders(c.Request.Context())
	respondList(c, "List of orders", orders, err)
}

// CreateOrder -> new orders start in status created
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.NewOrder
	if !decode(c, &req) {
		return
	}
	id, err := oc.Repo.CreateOrder(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Order created", created{ID: id}, err)
}

// GetOrderByID -> order with its lines
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	order, found, err := oc.Repo.GetOrder(c.Request.Context(), id)
	respondOne(c, "Order", order, found, err)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req models.OrderUpdate
	if !decode(c, &req) {
		return
	}
	err := oc.Repo.UpdateOrder(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Order updated", nil, err)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !decode(c, &req) {
		return
	}
	err := oc.Repo.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	respondDone(c, http.StatusOK, "Order status updated", nil, err)
}

// DeleteOrder -> removes the order and its lines
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	err := oc.Repo.DeleteOrder(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Order deleted", nil, err)
}

func (oc *OrderController) GetOrderItems(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	items, err := oc.Repo.GetOrderItems(c.Request.Context(), id)
	respondList(c, "Order items", items, err)
}

// AddOrderItem -> the line price is the menu item's price at this moment
func (oc *OrderController) AddOrderItem(c *gin.Context) {
	id, ok := pathID(c, "order_id")
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
	item, err := oc.Repo.AddOrderItem(c.Request.Context(), id, req.ItemID, req.Quantity)
	respondDone(c, http.StatusCreated, "Item added to order", item, err)
}

// RecalculateTotal -> total_amount becomes the sum of price*quantity over the lines
func (oc *OrderController) RecalculateTotal(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		return
	}
	total, err := oc.Repo.UpdateOrderTotal(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Order total updated", struct {
		TotalAmount decimal.Decimal `json:"total_amount"`
	}{total}, err)
}
