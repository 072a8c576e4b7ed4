package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Mutations wrap their payload in a message/data envelope; reads return the
// bare resource.

type MutationResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, MutationResponse{Message: message, Data: data})
}

func Updated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, MutationResponse{Message: message, Data: data})
}

func Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MutationResponse{Message: message})
}
