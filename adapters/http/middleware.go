package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

const (
	HeaderRequestID     = "X-Request-ID"
	GinContextRequestID = "requestID"
)

// RequestIDMiddleware tags every request with an id, reusing the caller's
// header when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(GinContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// ErrorMiddleware translates errors attached via c.Error into the response
// envelope. Internal failures keep their error detail in the body; the
// original API behaved this way and clients depend on it.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		msg := err.Error()
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && status == http.StatusNotFound {
			msg = appErr.Message
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed", err,
				zap.String("path", c.FullPath()),
				zap.String("request_id", c.GetString(GinContextRequestID)),
			)
		}

		respondError(c, status, msg)
	}
}
