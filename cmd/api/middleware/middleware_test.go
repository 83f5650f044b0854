package middleware

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blog-platform/config"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, bool) {
	id, ok := s[token]
	return id, ok
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestAdminAuth(t *testing.T) {
	r := newEngine(AdminAuth(config.AuthConfig{AdminUsername: "admin", AdminPassword: "qwerty"}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", basic("admin", "qwerty"), http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong password", basic("admin", "nope"), http.StatusUnauthorized},
		{"wrong user", basic("root", "qwerty"), http.StatusUnauthorized},
		{"bearer scheme", "Bearer " + base64.StdEncoding.EncodeToString([]byte("admin:qwerty")), http.StatusUnauthorized},
		{"lowercase scheme", "basic " + base64.StdEncoding.EncodeToString([]byte("admin:qwerty")), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAccessToken(t *testing.T) {
	r := newEngine(AccessToken(stubVerifier{"good": "user-1"}))

	w := do(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())

	for _, header := range []string{"", "Bearer bad", "bearer good", "Bearer  good", "Basic good", "Bearer "} {
		w := do(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.Empty(t, w.Body.String(), header)
	}
}

func TestRequestTraceSetsRequestID(t *testing.T) {
	r := newEngine(RequestTrace())

	w := do(r, "")
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
	assert.Equal(t, "0", w.Header().Get(headerSpanID))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "given")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "given", w.Header().Get(headerRequestID))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/x", func(c *gin.Context) { panic("boom") })

	w := do(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestBodySnippetRestoresBody(t *testing.T) {
	payload := `{"name":"A"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(payload))
	assert.Equal(t, payload, bodySnippet(req))

	rest, err := io.ReadAll(req.Body)
	assert.NoError(t, err)
	assert.Equal(t, payload, string(rest))

	secret := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"x"}`))
	assert.Empty(t, bodySnippet(secret))

	long := httptest.NewRequest(http.MethodPut, "/posts/1", strings.NewReader(strings.Repeat("a", maxBodyLog+10)))
	assert.Len(t, bodySnippet(long), maxBodyLog)
}

func TestLogBody(t *testing.T) {
	assert.False(t, logBody("/auth/login"))
	assert.False(t, logBody("/users"))
	assert.True(t, logBody("/blogs"))
}
