package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/KidawR/MainProgect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAdjust(t *testing.T) {
	s := setupServer(t)

	id := s.create("/api/inventory", map[string]any{"branch_id": 1, "item_name": "Молоко", "quantity": "10", "unit": "л"})

	w, _ := s.do(http.MethodPost, "/api/inventory/adjust", map[string]any{"branch_id": 1, "item_name": "Молоко", "delta": "-2.5"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp := s.do(http.MethodGet, fmt.Sprintf("/api/inventory/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7.5", decodeData[models.Inventory](t, resp).Quantity.String())

	w, _ = s.do(http.MethodPost, "/api/inventory/adjust", map[string]any{"branch_id": 2, "item_name": "Молоко", "delta": "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodPost, "/api/inventory", map[string]any{"branch_id": 1, "item_name": "Молоко", "quantity": "1", "unit": "л"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "one record per branch and item")

	w, resp = s.do(http.MethodGet, "/api/inventory?branch_id=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData[[]models.Inventory](t, resp))

	w, _ = s.do(http.MethodPatch, fmt.Sprintf("/api/inventory/%d", id), map[string]any{"unit": "мл"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/inventory/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodGet, fmt.Sprintf("/api/inventory/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
