package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Repo *repository.Repository
}

func NewCustomerController(repo *repository.Repository) *CustomerController {
	return &CustomerController{Repo: repo}
}

// GetAllCustomers -> every customer ordered by id
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	customers, err := cc.Repo.GetCustomers(c.Request.Context())
	respondList(c, "List of customers", customers, err)
}

// CreateCustomer -> registers a customer, registration date is set by the store
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req models.NewCustomer
	if !decode(c, &req) {
		return
	}

	id, err := cc.Repo.AddCustomer(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Customer created", created{ID: id}, err)
}

func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}
	customer, found, err := cc.Repo.GetCustomer(c.Request.Context(), id)
	respondOne(c, "Customer", customer, found, err)
}

// UpdateCustomer -> partial update, only the fields present in the body are written
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}
	var req models.CustomerUpdate
	if !decode(c, &req) {
		return
	}

	err := cc.Repo.UpdateCustomer(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Customer updated", nil, err)
}

// DeleteCustomer -> refused while the customer still has orders
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}
	err := cc.Repo.DeleteCustomer(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Customer deleted", nil, err)
}

// GetCustomerOrders -> newest first
func (cc *CustomerController) GetCustomerOrders(c *gin.Context) {
	id, ok := pathID(c, "customer_id")
	if !ok {
		return
	}
	orders, err := cc.Repo.GetOrdersByCustomer(c.Request.Context(), id)
	respondList(c, "Orders of customer", orders, err)
}
