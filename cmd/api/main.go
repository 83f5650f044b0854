package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/auth"
	"blog-platform/cmd/api/router"
	"blog-platform/cmd/api/services"
	"blog-platform/config"
	"blog-platform/db"
	"blog-platform/eventbus"
	"blog-platform/internal/logger"
	"blog-platform/repositories"
)

const shutdownTimeout = 10 * time.Second

// @title           Blog Platform API
// @version         1.0
// @description     Blogs, posts, comments and users with admin Basic auth and bearer tokens
// @BasePath        /
// @securityDefinitions.basic  BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level)
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// MongoDB 초기화
	client, database, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			logger.Log.Errorf("mongo disconnect: %v", err)
		}
	}()

	// EventBus 초기화 및 토픽 보장
	topics := eventbus.NewTopics(cfg.Events.TopicPrefix)
	bus := newEventBus(ctx, cfg.Events, topics)
	defer bus.Close()

	jwt, err := auth.NewJWTManager(cfg.Auth)
	if err != nil {
		logger.Log.Errorf("failed to create token manager: %v", err)
		os.Exit(1)
	}
	hasher := auth.NewPasswordHasher()

	// 서비스 초기화
	blogRepo := repositories.NewBlogRepository(database)
	postRepo := repositories.NewPostRepository(database)
	commentRepo := repositories.NewCommentRepository(database)
	userRepo := repositories.NewUserRepository(database)

	blogs := services.NewBlogService(blogRepo)
	posts := services.NewPostService(postRepo, blogs)
	engine := router.New(router.Deps{
		Config:   cfg,
		Blogs:    blogs,
		Posts:    posts,
		Comments: services.NewCommentService(commentRepo, posts, userRepo, bus, topics.Comments),
		Users:    services.NewUserService(userRepo, hasher, bus, topics.Users, cfg.Auth.ConfirmationTTL),
		Auth:     services.NewAuthService(userRepo, hasher, jwt),
		Testing:  services.NewTestingService(blogRepo, postRepo, commentRepo, userRepo),
		Tokens:   jwt,
		Health:   db.Pinger{Client: client},
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.WithCORS(cfg.CORS, engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("starting api server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("api server error: %v", err)
			stop()
		}
	}()

	// 종료 신호 대기
	<-ctx.Done()
	logger.Log.Info("received shutdown signal, shutting down api server...")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Log.Errorf("api server shutdown: %v", err)
	}
	logger.Log.Info("api server stopped")
}

// newEventBus 는 브로커가 설정돼 있으면 Kafka 버스를, 아니면 NopEventBus 를 만든다.
// 토픽 생성 실패는 치명적이지 않다.
func newEventBus(ctx context.Context, cfg config.EventsConfig, topics eventbus.Topics) eventbus.EventBus {
	if cfg.Brokers == "" {
		logger.Log.Info("kafka brokers not configured, domain events are discarded")
		return eventbus.NopEventBus{}
	}
	if err := eventbus.EnsureTopics(ctx, cfg.Brokers, topics.All(), 3); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
	}
	bus, err := eventbus.NewKafkaEventBus(cfg.Brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus, falling back to no-op: %v", err)
		return eventbus.NopEventBus{}
	}
	return bus
}
