package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper every endpoint returns. Message and Error
// serialize as null when unset.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
	Error   *string `json:"error"`
}

func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: &message})
}

func respondError(c *gin.Context, status int, errMsg string) {
	c.JSON(status, Envelope{Success: false, Error: &errMsg})
}
