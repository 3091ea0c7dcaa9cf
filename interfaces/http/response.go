package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"videotube/domain/apperror"
	"videotube/infrastructure/logger"
)

const (
	ErrorUnmarshal = "Error while unmarshal"
)

// Response is the envelope every handler answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var kindStatus = map[apperror.Kind]int{
	apperror.KindInvalidArgument: http.StatusBadRequest,
	apperror.KindUnauthenticated: http.StatusUnauthorized,
	apperror.KindForbidden:       http.StatusForbidden,
	apperror.KindNotFound:        http.StatusNotFound,
	apperror.KindConflict:        http.StatusConflict,
	apperror.KindUpstream:        http.StatusBadGateway,
}

// StatusOf maps an error to its HTTP status; errors without a kind count
// as upstream failures.
func StatusOf(err error) int {
	if status, ok := kindStatus[apperror.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

func respondError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.GetLogger().WithField("error", err).Error("request failed")
	}
	c.JSON(status, Response{Success: false, Message: apperror.MessageOf(err)})
}
