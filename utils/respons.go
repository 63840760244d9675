package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Success: code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Success: false,
		Message: err.Error(),
	})
}

// RespondFieldErrors -> validation failure with per-field detail
func RespondFieldErrors(c *gin.Context, code int, message string, errors map[string]string) {
	c.JSON(code, JSONResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	})
}
