package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-platform/config"
)

// AdminAuth 는 설정된 관리자 계정 하나로 HTTP Basic 인증을 검사한다.
// 헤더가 없거나 스킴/자격 증명이 틀리면 본문 없이 401 로 중단한다.
func AdminAuth(cfg config.AuthConfig) gin.HandlerFunc {
	return gin.BasicAuthForRealm(gin.Accounts{cfg.AdminUsername: cfg.AdminPassword}, "")
}
