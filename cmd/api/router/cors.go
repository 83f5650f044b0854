package router

import (
	"net/http"

	"github.com/rs/cors"

	"blog-platform/config"
)

// WithCORS 는 gin 엔진을 rs/cors 핸들러로 감싼다.
// AllowedOrigins 가 비어 있으면 모든 origin 을 허용한다.
func WithCORS(cfg config.CORSConfig, h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id", "X-Span-Id"},
	})
	return c.Handler(h)
}
