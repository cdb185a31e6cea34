package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Repo *repository.Repository
}

func NewMenuController(repo *repository.Repository) *MenuController {
	return &MenuController{Repo: repo}
}

// GetMenu -> every item with its category name, uncategorised items included
func (mc *MenuController) GetMenu(c *gin.Context) {
	menu, err := mc.Repo.GetMenu(c.Request.Context())
	respondList(c, "Menu", menu, err)
}

func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Repo.GetMenuItems(c.Request.Context())
	respondList(c, "List of menu items", items, err)
}

func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.NewMenuItem
	if !decode(c, &req) {
		return
	}
	id, err := mc.Repo.AddMenuItem(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Menu item created", created{ID: id}, err)
}

func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	item, found, err := mc.Repo.GetMenuItem(c.Request.Context(), id)
	respondOne(c, "Menu item", item, found, err)
}

func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var req models.MenuItemUpdate
	if !decode(c, &req) {
		return
	}
	err := mc.Repo.UpdateMenuItem(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Menu item updated", nil, err)
}

// DeleteMenuItem -> refused while order or supply lines reference the item
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	err := mc.Repo.RemoveMenuItem(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Menu item removed", nil, err)
}

func (mc *MenuController) GetItemSuppliers(c *gin.Context) {
	id, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	suppliers, err := mc.Repo.GetSuppliersByItem(c.Request.Context(), id)
	respondList(c, "Suppliers of item", suppliers, err)
}
