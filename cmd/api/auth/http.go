package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
)

const bearerPrefix = "Bearer "

// ExtractBearerToken 은 Authorization 헤더가 정확히 "Bearer <token>" 형태일 때만 토큰을 꺼낸다.
// 스킴은 대소문자를 구분하고 구분자는 공백 한 칸이다.
func ExtractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return "", ErrInvalidFormat
	}
	if token == "" {
		return "", ErrEmptyToken
	}
	if strings.ContainsAny(token, " \t") {
		return "", ErrInvalidFormat
	}

	return token, nil
}

// AbortWithUnauthorized 는 본문 없이 401 로 요청을 중단한다.
// 실패 원인은 응답에 드러내지 않는다.
func AbortWithUnauthorized(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}
