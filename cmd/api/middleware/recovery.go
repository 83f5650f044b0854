package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/trace"
	"blog-platform/internal/logger"
)

// Recovery 는 핸들러 panic 을 잡아 구조화 로그를 남기고 500 으로 응답한다.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.ErrorWithFields("panic recovered", logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestID(c.Request.Context()),
			"panic":      recovered,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal server error"})
	})
}
