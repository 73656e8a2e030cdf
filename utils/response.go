package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the failure envelope. Error is either a message or a list of
// FieldError values.
type Response struct {
	Success bool        `json:"success"`
	Error   interface{} `json:"error,omitempty"`
}

func Fail(c *gin.Context, status int, err interface{}) {
	c.JSON(status, &Response{
		Success: false,
		Error:   err,
	})
}

// AbortWithError writes the failure envelope and stops the handler chain.
func AbortWithError(c *gin.Context, status int, err interface{}) {
	c.AbortWithStatusJSON(status, &Response{
		Success: false,
		Error:   err,
	})
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

func BadRequest(c *gin.Context, err interface{}) {
	Fail(c, http.StatusBadRequest, err)
}

func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, message)
}

func NotImplemented(c *gin.Context, message string) {
	Fail(c, http.StatusNotImplemented, message)
}
