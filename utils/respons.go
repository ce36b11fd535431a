package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondJSONMeta is RespondJSON with an extra meta block for listings
// that report counts or filter context.
func RespondJSONMeta(c *gin.Context, code int, message string, data interface{}, meta interface{}) {
	c.JSON(code, gin.H{
		"status":  code >= 200 && code < 300,
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError unwraps the taxonomy error and writes its status and code.
// Anything that is not an AppError is reported as an internal error.
func RespondAppError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternal(err)
	}
	if appErr.Status >= http.StatusInternalServerError {
		ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(appErr.Status, JSONResponse{
		Status:  false,
		Message: appErr.Message,
		Code:    appErr.Code,
	})
}
