package middleware

import (
	"github.com/gin-gonic/gin"

	"pixelpost/internal/transport/httpdto"
	"pixelpost/pkg/logger"
)

// ErrorHandler logs errors that handlers attached to the gin context and
// renders the last one as a detail body if nothing was written yet.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.Errorf("request error: %s", err.Error())
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(c.Writer.Status(), httpdto.NewErrorResponse(err.Error()))
	}
}
