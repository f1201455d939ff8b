package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// Envelope is the uniform JSON wrapper every endpoint responds with.
// Successful responses carry data/count/message; failures carry error and,
// for validation failures, the offending fields.
type Envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message,omitempty"`
	Count     *int                `json:"count,omitempty"`
	Data      any                 `json:"data,omitempty"`
	Error     string              `json:"error,omitempty"`
	Errors    []domain.FieldError `json:"errors,omitempty"`
	Stack     string              `json:"stack,omitempty"`
	Timestamp string              `json:"timestamp,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ListResponse(c *gin.Context, count int, data any) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// ErrorResponse is the single conversion boundary: every error raised during
// request processing funnels through here exactly once. Unknown errors
// default to 500; handlers must return immediately after calling it.
func ErrorResponse(c *gin.Context, log *logrus.Logger, err error) {
	appErr := domain.AsAppError(err)
	status := appErr.Status()

	entry := log.WithFields(logrus.Fields{
		"status": status,
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
	if status >= http.StatusInternalServerError {
		entry.Errorf("Request failed: %v", err)
	} else {
		entry.Warnf("Request rejected: %v", err)
	}

	c.JSON(status, Envelope{
		Success: false,
		Error:   appErr.Message,
		Errors:  appErr.Fields,
	})
}
