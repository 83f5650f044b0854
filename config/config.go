package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// AppConfig 는 프로세스 시작 시 한 번 만들어지고 이후에는 읽기 전용으로 주입된다.
type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Auth    AuthConfig    `yaml:"auth"`
	CORS    CORSConfig    `yaml:"cors"`
	Events  EventsConfig  `yaml:"events"`
}

type LoggingConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"HOST"`
	Port int    `yaml:"port" env:"PORT"`
	// TestingRoutes 가 true 이면 DELETE /testing/all-data 를 노출한다.
	TestingRoutes bool `yaml:"testing_routes" env:"TESTING_ROUTES"`
}

// Addr 는 http.Server 에 넘길 listen 주소를 만든다.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type MongoConfig struct {
	URI    string `yaml:"uri" env:"MONGO_URL"`
	DBName string `yaml:"db_name" env:"MONGO_DB_NAME"`
}

// AuthConfig 는 토큰 서명 키, 토큰 TTL, 관리자 계정 정보를 담는다.
type AuthConfig struct {
	TokenSecret     string        `yaml:"token_secret" env:"AC_TOKEN_SECRET"`
	TokenTTL        time.Duration `yaml:"token_ttl" env:"AC_TOKEN_TTL"`
	ConfirmationTTL time.Duration `yaml:"confirmation_ttl" env:"CONFIRMATION_TTL"`
	AdminUsername   string        `yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPassword   string        `yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// EventsConfig 의 Brokers 가 비어 있으면 이벤트는 발행되지 않는다.
type EventsConfig struct {
	Brokers     string `yaml:"kafka_bootstrap_servers" env:"KAFKA_BOOTSTRAP_SERVERS"`
	TopicPrefix string `yaml:"topic_prefix" env:"KAFKA_TOPIC_PREFIX"`
}

var (
	ErrMissingTokenSecret   = errors.New("auth.token_secret (AC_TOKEN_SECRET) is required")
	ErrInvalidTokenTTL      = errors.New("auth.token_ttl (AC_TOKEN_TTL) must be positive")
	ErrMissingAdminAccount  = errors.New("auth.admin_username and auth.admin_password are required")
	ErrMissingMongoSettings = errors.New("mongo.uri (MONGO_URL) and mongo.db_name (MONGO_DB_NAME) are required")
)

func defaults() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Host: "0.0.0.0", Port: 3000, TestingRoutes: true},
		Mongo:   MongoConfig{DBName: "blog_platform"},
		Auth: AuthConfig{
			TokenTTL:        10 * time.Minute,
			ConfirmationTTL: time.Hour,
			AdminUsername:   "admin",
		},
		Events: EventsConfig{TopicPrefix: "blog-platform"},
	}
}

// Load 는 .env, config.yaml, 환경변수 순서로 설정을 읽어 검증된 AppConfig 를 반환한다.
// 뒤에 읽은 값이 앞의 값을 덮어쓴다.
func Load() (*AppConfig, error) {
	return LoadFrom(GetBasePath())
}

// LoadFrom 은 basePath 디렉터리의 .env 와 config.yaml 을 사용한다.
// config.yaml 이 없으면 기본값과 환경변수만으로 구성한다.
func LoadFrom(basePath string) (*AppConfig, error) {
	// .env 는 선택 사항이다.
	_ = godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := defaults()

	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate 는 서버 구동에 필요한 필수 값이 채워져 있는지 확인한다.
func (c *AppConfig) Validate() error {
	if c.Auth.TokenSecret == "" {
		return ErrMissingTokenSecret
	}
	if c.Auth.TokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}
	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return ErrMissingAdminAccount
	}
	if c.Mongo.URI == "" || c.Mongo.DBName == "" {
		return ErrMissingMongoSettings
	}
	if c.Auth.ConfirmationTTL <= 0 {
		c.Auth.ConfirmationTTL = time.Hour
	}
	return nil
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
