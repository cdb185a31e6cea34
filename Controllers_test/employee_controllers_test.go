package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/KidawR/MainProgect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeBranches(t *testing.T) {
	s := setupServer(t)

	id := s.create("/api/employees", map[string]any{
		"name":      "Ольга Иванова",
		"position":  "бариста",
		"hire_date": "2024-03-01T00:00:00Z",
		"salary":    "55000.00",
		"is_active": false,
	})

	w, resp := s.do(http.MethodGet, fmt.Sprintf("/api/employees/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	employee := decodeData[models.Employee](t, resp)
	assert.False(t, employee.IsActive)
	assert.Equal(t, "55000", employee.Salary.String())

	w, _ = s.do(http.MethodPost, fmt.Sprintf("/api/employees/%d/branches", id), map[string]any{"branch_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = s.do(http.MethodPost, fmt.Sprintf("/api/employees/%d/branches", id), map[string]any{"branch_id": 1})
	require.Equal(t, http.StatusOK, w.Code, "assigning twice is idempotent")

	w, resp = s.do(http.MethodGet, fmt.Sprintf("/api/employees/%d/branches", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	branches := decodeData[[]models.Branch](t, resp)
	require.Len(t, branches, 1)
	assert.Equal(t, uint(1), branches[0].BranchID)

	w, resp = s.do(http.MethodGet, "/api/employees?branch_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]models.EmployeeWithBranch](t, resp), 1)

	w, resp = s.do(http.MethodGet, "/api/employees?branch_id=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData[[]models.EmployeeWithBranch](t, resp))

	w, _ = s.do(http.MethodPost, fmt.Sprintf("/api/employees/%d/branches", id), map[string]any{"branch_id": 99})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/employees/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.do(http.MethodGet, fmt.Sprintf("/api/employees/%d/branches", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeData[[]models.Branch](t, resp))
}

func TestBranches(t *testing.T) {
	s := setupServer(t)

	w, resp := s.do(http.MethodGet, "/api/branches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]models.Branch](t, resp), len(databaseBranches()))

	w, _ = s.do(http.MethodGet, "/api/branches/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/branches/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
