package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every JSON response.
type Envelope[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	Message   string `json:"message,omitempty"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusOK, Envelope[T]{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope[any]{
		Success: true,
		Message: message,
	})
}

func Created[T any](c *gin.Context, data T, message string) {
	c.JSON(http.StatusCreated, Envelope[T]{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// List always renders data as an array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, Envelope[[]T]{
		Success: true,
		Data:    data,
	})
}
