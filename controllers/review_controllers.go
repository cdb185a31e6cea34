package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/KidawR/MainProgect/audit"
	"github.com/KidawR/MainProgect/models"
	"github.com/KidawR/MainProgect/repository"
	"github.com/KidawR/MainProgect/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	Repo *repository.Repository
}

func NewReviewController(repo *repository.Repository) *ReviewController {
	return &ReviewController{Repo: repo}
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	branchID, ok := queryID(c, "branch_id")
	if !ok {
		return
	}
	reviews, err := rc.Repo.GetReviews(c.Request.Context(), branchID)
	respondList(c, "List of reviews", reviews, err)
}

// AddReview -> sentiment must be within 1..5
func (rc *ReviewController) AddReview(c *gin.Context) {
	var req models.NewReview
	if !decode(c, &req) {
		return
	}
	err := rc.Repo.AddReview(c.Request.Context(), req)
	respondDone(c, http.StatusCreated, "Review added", nil, err)
}

type LogController struct {
	Repo *repository.Repository
}

func NewLogController(repo *repository.Repository) *LogController {
	return &LogController{Repo: repo}
}

// GetLogs -> newest first, ?user_id= ?action= ?limit= filter the result
func (lc *LogController) GetLogs(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	filter := models.LogFilter{UserID: userID, Action: c.Query("action")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		filter.Limit = limit
	}
	logs, err := lc.Repo.GetLogs(c.Request.Context(), filter)
	respondList(c, "Action log", logs, err)
}

// LogAction -> queues a record, it is written asynchronously
func (lc *LogController) LogAction(c *gin.Context) {
	var req struct {
		UserID  uint           `json:"user_id"`
		Action  string         `json:"action"`
		Details map[string]any `json:"details"`
	}
	if !decode(c, &req) {
		return
	}
	if req.Action == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("action is required"))
		return
	}
	lc.Repo.LogAction(req.UserID, req.Action, audit.Fields(req.Details))
	utils.RespondJSON(c, http.StatusAccepted, "Action queued", nil)
}
