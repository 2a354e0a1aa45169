package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spacesedan/textlens/internal/models"
)

const (
	MessageInvalidJSON  = "Invalid JSON in request body"
	MessageMissingText  = "Missing required parameter: text"
	MessageProcessError = "Error processing request"
)

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{
		Status:  models.StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope{
		Status:  models.StatusError,
		Message: message,
	})
}
