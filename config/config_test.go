package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"LOG_LEVEL", "HOST", "PORT", "TESTING_ROUTES", "MONGO_URL", "MONGO_DB_NAME",
	"AC_TOKEN_SECRET", "AC_TOKEN_TTL", "CONFIRMATION_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD",
	"CORS_ALLOWED_ORIGINS", "KAFKA_BOOTSTRAP_SERVERS", "KAFKA_TOPIC_PREFIX",
}

// clearEnv 는 개발자 환경변수가 테스트 결과에 섞이지 않도록 비운다.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

const sampleYAML = `
logging:
  level: debug
server:
  host: 127.0.0.1
  port: 8081
mongo:
  uri: mongodb://db:27017
  db_name: blogs_test
auth:
  token_secret: yaml-secret
  token_ttl: 15m
  admin_username: root
  admin_password: toor
cors:
  allowed_origins: ["https://a.example"]
`

func TestLoadFrom_ReadsYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, sampleYAML)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, "blogs_test", cfg.Mongo.DBName)
	assert.Equal(t, "yaml-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ConfirmationTTL)
	assert.Equal(t, "root", cfg.Auth.AdminUsername)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Server.TestingRoutes)
}

func TestLoadFrom_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, sampleYAML)

	t.Setenv("AC_TOKEN_SECRET", "env-secret")
	t.Setenv("AC_TOKEN_TTL", "30s")
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_PASSWORD", "qwerty")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://x.example,https://y.example")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, 30*time.Second, cfg.Auth.TokenTTL)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "qwerty", cfg.Auth.AdminPassword)
	assert.Equal(t, "root", cfg.Auth.AdminUsername)
	assert.Equal(t, []string{"https://x.example", "https://y.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFrom_DotEnvWithoutConfigFile(t *testing.T) {
	clearEnv(t)
	// godotenv 는 이미 존재하는 키를 덮어쓰지 않으므로 비워 둔 키를 해제한다.
	for _, k := range []string{"AC_TOKEN_SECRET", "ADMIN_PASSWORD", "MONGO_URL"} {
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	writeFile(t, dir, ENV_FILE, "AC_TOKEN_SECRET=dotenv-secret\nADMIN_PASSWORD=qwerty\nMONGO_URL=mongodb://localhost:27017\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.Equal(t, 10*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "blog_platform", cfg.Mongo.DBName)
}

func TestLoadFrom_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want error
	}{
		{
			name: "missing secret",
			env:  map[string]string{"ADMIN_PASSWORD": "p", "MONGO_URL": "mongodb://x"},
			want: ErrMissingTokenSecret,
		},
		{
			name: "missing admin password",
			env:  map[string]string{"AC_TOKEN_SECRET": "s", "MONGO_URL": "mongodb://x"},
			want: ErrMissingAdminAccount,
		},
		{
			name: "missing mongo uri",
			env:  map[string]string{"AC_TOKEN_SECRET": "s", "ADMIN_PASSWORD": "p"},
			want: ErrMissingMongoSettings,
		},
		{
			name: "negative ttl",
			env:  map[string]string{"AC_TOKEN_SECRET": "s", "ADMIN_PASSWORD": "p", "MONGO_URL": "mongodb://x", "AC_TOKEN_TTL": "-1m"},
			want: ErrInvalidTokenTTL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFrom(t.TempDir())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFrom_BadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, CONFIG_FILE, "server: [unclosed")

	_, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), CONFIG_FILE)
}
