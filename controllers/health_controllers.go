package controllers

import (
	"net/http"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/repository"
	"github.com/KidawR/MainProgect/utils"
	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Repo *repository.Repository
}

func NewHealthController(repo *repository.Repository) *HealthController {
	return &HealthController{Repo: repo}
}

type healthReport struct {
	Database string      `json:"database"`
	Audit    audit.Stats `json:"audit"`
}

// Health -> 503 when the relational store does not answer
func (hc *HealthController) Health(c *gin.Context) {
	report := healthReport{Database: "ok", Audit: hc.Repo.AuditStats()}
	if err := hc.Repo.Ping(c.Request.Context()); err != nil {
		report.Database = "unavailable"
		utils.RespondJSON(c, http.StatusServiceUnavailable, "Degraded", report)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Healthy", report)
}
