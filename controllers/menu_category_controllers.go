package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
)

type MenuCategoryController struct {
	Repo *repository.Repository
}

func NewMenuCategoryController(repo *repository.Repository) *MenuCategoryController {
	return &MenuCategoryController{Repo: repo}
}

func (mc *MenuCategoryController) GetAllCategories(c *gin.Context) {
	categories, err := mc.Repo.GetMenuCategories(c.Request.Context())
	respondList(c, "List of menu categories", categories, err)
}

func (mc *MenuCategoryController) CreateCategory(c *gin.Context) {
	var req models.NewMenuCategory
	if !decode(c, &req) {
		return
	}
	id, err := mc.Repo.AddMenuCategory(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Menu category created", created{ID: id}, err)
}

func (mc *MenuCategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	category, found, err := mc.Repo.GetMenuCategory(c.Request.Context(), id)
	respondOne(c, "Menu category", category, found, err)
}

func (mc *MenuCategoryController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	var req models.MenuCategoryUpdate
	if !decode(c, &req) {
		return
	}
	err := mc.Repo.UpdateMenuCategory(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Menu category updated", nil, err)
}

// DeleteCategory -> items stay, only their links to the category go
func (mc *MenuCategoryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	err := mc.Repo.DeleteMenuCategory(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Menu category deleted", nil, err)
}

func (mc *MenuCategoryController) GetCategoryItems(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	items, err := mc.Repo.GetItemsByCategory(c.Request.Context(), id)
	respondList(c, "Items in category", items, err)
}

func (mc *MenuCategoryController) AssignItem(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	var req struct {
		ItemID uint `json:"item_id"`
	}
	if !decode(c, &req) {
		return
	}
	err := mc.Repo.AssignItemToCategory(c.Request.Context(), req.ItemID, id)
	respondDone(c, http.StatusOK, "Item assigned to category", nil, err)
}
