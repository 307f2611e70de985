package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logdemo/loghub/pkg/response"
)

func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					zap.Any("error", err),
					zap.String("request_id", c.GetString(ContextKeyRequestID)),
				)
				c.Abort()
				response.InternalError(c, "internal server error")
			}
		}()
		c.Next()
	}
}
