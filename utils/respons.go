package utils

import (
	"net/http"

	"github.com/KidawR/MainProgect/errs"
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// StatusFor maps a repository error to an HTTP status.
func StatusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.Validation:
		return http.StatusBadRequest
	case errs.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// RespondRepoError writes err with the status of its kind. Store errors
// are logged and their detail is not sent to the client.
func RespondRepoError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		if ErrorLogger != nil {
			ErrorLogger.WithField("path", c.Request.URL.Path).WithError(err).Error("request failed")
		}
		c.JSON(code, JSONResponse{Status: false, Message: "internal store error"})
		return
	}
	RespondError(c, code, err)
}
