package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/KidawR/MainProgect/database"
	"github.com/KidawR/MainProgect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func databaseBranches() []models.Branch { return database.DefaultBranches }

func TestMenuCRUD(t *testing.T) {
	s := setupServer(t)

	catID := s.create("/api/categories", map[string]any{"name": "Кофе"})
	latte := s.create("/api/menu-items", map[string]any{
		"name":        "Латте",
		"description": "эспрессо с молоком",
		"price":       "250.00",
		"calories":    190,
	})
	tea := s.create("/api/menu-items", map[string]any{"name": "Чай", "price": "120", "is_available": false})

	w, _ := s.do(http.MethodPost, fmt.Sprintf("/api/categories/%d/items", catID), map[string]any{"item_id": latte})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := s.do(http.MethodGet, fmt.Sprintf("/api/categories/%d/items", catID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeData[[]models.MenuItem](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Латте", items[0].Name)

	w, resp = s.do(http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	menu := decodeData[[]models.MenuEntry](t, resp)
	require.Len(t, menu, 2)
	byID := map[uint]models.MenuEntry{}
	for _, e := range menu {
		byID[e.ItemID] = e
	}
	require.NotNil(t, byID[latte].Category)
	assert.Equal(t, "Кофе", *byID[latte].Category)
	assert.Nil(t, byID[tea].Category)
	assert.False(t, byID[tea].IsAvailable)

	w, _ = s.do(http.MethodPatch, fmt.Sprintf("/api/menu-items/%d", latte), map[string]any{"price": "270.50"})
	require.Equal(t, http.StatusOK, w.Code)
	w, resp = s.do(http.MethodGet, fmt.Sprintf("/api/menu-items/%d", latte), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "270.5", decodeData[models.MenuItem](t, resp).Price.String())

	w, _ = s.do(http.MethodPatch, fmt.Sprintf("/api/menu-items/%d", latte), map[string]any{"price": "-1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", catID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(http.MethodGet, "/api/menu-items", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]models.MenuItem](t, resp), 2, "deleting a category keeps its items")

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/menu-items/%d", tea), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/menu-items/%d", tea), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryAssignMissing(t *testing.T) {
	s := setupServer(t)
	catID := s.create("/api/categories", map[string]any{"name": "Десерты"})

	w, _ := s.do(http.MethodPost, fmt.Sprintf("/api/categories/%d/items", catID), map[string]any{"item_id": 77})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodGet, "/api/categories/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
