package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/auth"
	"blog-platform/internal/logger"
)

// UserIDKey 는 인증된 사용자 id 를 gin 컨텍스트에 저장할 때 쓰는 키다.
const UserIDKey = "userId"

type TokenVerifier interface {
	Verify(token string) (string, bool)
}

// AccessToken 은 Bearer access token 을 검증하고 userId 를 컨텍스트에 저장한다.
func AccessToken(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			logger.DebugWithFields("access token rejected", logger.Fields{"path": c.Request.URL.Path, "reason": err.Error()})
			auth.AbortWithUnauthorized(c)
			return
		}

		userID, ok := tokens.Verify(token)
		if !ok {
			auth.AbortWithUnauthorized(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID 는 AccessToken 미들웨어가 저장한 사용자 id 를 꺼낸다.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
