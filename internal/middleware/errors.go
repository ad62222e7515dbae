package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/Jayantx07/Education-Point/pkg/errors"
	"github.com/Jayantx07/Education-Point/pkg/response"
)

// Recovery renders panics as the standard 500 envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		response.Abort(c, appErrors.Internal(fmt.Errorf("panic: %v", recovered), appErrors.ErrInternal.Message))
	})
}

// ErrorHandler renders errors recorded with c.Error when no handler wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		response.Error(c, c.Errors.Last().Err)
	}
}

// NotFound renders unknown routes as a 404 envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("not found - %s", c.Request.URL.Path)))
	}
}
