package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/trace"
	"blog-platform/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
	maxBodyLog      = 1024
)

// RequestTrace 는 요청마다 request id 를 보장해 컨텍스트와 응답 헤더에 싣고,
// 완료 시 구조화 로그 한 줄을 남긴다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx, requestID := trace.Start(c.Request.Context(), c.GetHeader(headerRequestID))
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, trace.InboundSpan)

		body := bodySnippet(c.Request)

		c.Next()

		fields := logger.Fields{
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"query_params":   map[string][]string(c.Request.URL.Query()),
			"status":         c.Writer.Status(),
			"duration":       time.Since(start).String(),
			"request_id":     requestID,
			"span_id":        trace.InboundSpan,
			"outbound_spans": trace.Outbound(ctx),
		}
		if body != "" {
			fields["body"] = body
		}
		logger.InfoWithFields("completed request", fields)
	}
}

// bodySnippet 은 쓰기 요청 본문 앞부분을 읽고 핸들러가 다시 읽을 수 있게 되돌려 놓는다.
func bodySnippet(req *http.Request) string {
	if req.Body == nil || req.ContentLength == 0 || !logBody(req.URL.Path) {
		return ""
	}
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return ""
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(b))
	if len(b) > maxBodyLog {
		b = b[:maxBodyLog]
	}
	return string(b)
}

// logBody 는 요청 본문을 로그에 남겨도 되는 경로인지 판단한다.
// /auth 와 /users 본문에는 비밀번호가 들어 있다.
func logBody(path string) bool {
	return !strings.HasPrefix(path, "/auth") && !strings.HasPrefix(path, "/users")
}
