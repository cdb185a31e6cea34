package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	Repo *repository.Repository
}

func NewEmployeeController(repo *repository.Repository) *EmployeeController {
	return &EmployeeController{Repo: repo}
}

// GetAllEmployees -> optional ?branch_id= narrows to one branch
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	branchID, ok := queryID(c, "branch_id")
	if !ok {
		return
	}
	employees, err := ec.Repo.GetEmployees(c.Request.Context(), branchID)
	respondList(c, "List of employees", employees, err)
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req models.NewEmployee
	if !decode(c, &req) {
		return
	}
	id, err := ec.Repo.AddEmployee(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Employee created", created{ID: id}, err)
}

func (ec *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	employee, found, err := ec.Repo.GetEmployee(c.Request.Context(), id)
	respondOne(c, "Employee", employee, found, err)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	var req models.EmployeeUpdate
	if !decode(c, &req) {
		return
	}
	err := ec.Repo.UpdateEmployee(c.Request.Context(), id, req)
	respondDone(c, http.StatusOK, "Employee updated", nil, err)
}

// DeleteEmployee -> drops branch assignments, refused while orders reference the employee
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	err := ec.Repo.RemoveEmployee(c.Request.Context(), id)
	respondDone(c, http.StatusOK, "Employee removed", nil, err)
}

func (ec *EmployeeController) GetEmployeeBranches(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	branches, err := ec.Repo.GetBranchesByEmployee(c.Request.Context(), id)
	respondList(c, "Branches of employee", branches, err)
}

// AssignBranch -> idempotent, assigning the same branch twice is not an error
func (ec *EmployeeController) AssignBranch(c *gin.Context) {
	id, ok := pathID(c, "employee_id")
	if !ok {
		return
	}
	var req struct {
		BranchID uint `json:"branch_id"`
	}
	if !decode(c, &req) {
		return
	}
	err := ec.Repo.AssignEmployeeToBranch(c.Request.Context(), id, req.BranchID)
	respondDone(c, http.StatusOK, "Employee assigned to branch", nil, err)
}

type BranchController struct {
	Repo *repository.Repository
}

func NewBranchController(repo *repository.Repository) *BranchController {
	return &BranchController{Repo: repo}
}

func (bc *BranchController) GetAllBranches(c *gin.Context) {
	branches, err := bc.Repo.GetBranches(c.Request.Context())
	respondList(c, "List of branches", branches, err)
}

func (bc *BranchController) GetBranchByID(c *gin.Context) {
	id, ok := pathID(c, "branch_id")
	if !ok {
		return
	}
	branch, found, err := bc.Repo.GetBranch(c.Request.Context(), id)
	respondOne(c, "Branch", branch, found, err)
}
