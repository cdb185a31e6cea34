package controllers

import (
	"fmt"
	"net/http"

	"github.com/KidawR/MainProgect/utils"
	"github.com/gin-gonic/gin"
)

// pathID parses a path parameter and answers 400 itself when it is bad.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(c, name)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (*uint, bool) {
	v, err := utils.OptionalUintQuery(c, name)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return nil, false
	}
	return v, true
}

func decode(c *gin.Context, dst any) bool {
	if err := utils.DecodeStrict(c, dst); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return false
	}
	return true
}

// respondOne writes a single-row read: 404 when the row is absent.
func respondOne[T any](c *gin.Context, what string, item *T, found bool, err error) {
	if err != nil {
		utils.RespondRepoError(c, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("%s not found", what))
		return
	}
	utils.RespondJSON(c, http.StatusOK, what+" details", item)
}

func respondList[T any](c *gin.Context, message string, items []T, err error) {
	if err != nil {
		utils.RespondRepoError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, items)
}

func respondDone(c *gin.Context, code int, message string, data any, err error) {
	if err != nil {
		utils.RespondRepoError(c, err)
		return
	}
	utils.RespondJSON(c, code, message, data)
}

type created struct {
	ID uint `json:"id"`
}
