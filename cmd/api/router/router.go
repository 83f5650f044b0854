package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-platform/cmd/api/handlers"
	"blog-platform/cmd/api/middleware"
	"blog-platform/cmd/api/services"
	"blog-platform/config"
	_ "blog-platform/docs"
)

// Deps 는 라우터가 핸들러에 연결하는 구성 요소 묶음이다.
type Deps struct {
	Config   *config.AppConfig
	Blogs    *services.BlogService
	Posts    *services.PostService
	Comments *services.CommentService
	Users    *services.UserService
	Auth     *services.AuthService
	Testing  *services.TestingService
	Tokens   middleware.TokenVerifier
	Health   handlers.Pinger
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestTrace())

	admin := middleware.AdminAuth(d.Config.Auth)
	bearer := middleware.AccessToken(d.Tokens)

	if d.Health != nil {
		r.GET("/health", handlers.HealthHandler(d.Health))
	}

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// gin 은 같은 위치의 와일드카드 이름이 같아야 하므로 /blogs/:id/posts 처럼 :id 를 공유한다.
	blogs := r.Group("/blogs")
	{
		blogs.GET("", handlers.ListBlogsHandler(d.Blogs))
		blogs.GET("/:id", handlers.GetBlogHandler(d.Blogs))
		blogs.POST("", admin, handlers.CreateBlogHandler(d.Blogs))
		blogs.PUT("/:id", admin, handlers.UpdateBlogHandler(d.Blogs))
		blogs.DELETE("/:id", admin, handlers.DeleteBlogHandler(d.Blogs))
		blogs.GET("/:id/posts", handlers.ListBlogPostsHandler(d.Posts))
		blogs.POST("/:id/posts", admin, handlers.CreateBlogPostHandler(d.Posts))
	}

	posts := r.Group("/posts")
	{
		posts.GET("", handlers.ListPostsHandler(d.Posts))
		posts.GET("/:id", handlers.GetPostHandler(d.Posts))
		posts.POST("", admin, handlers.CreatePostHandler(d.Posts))
		posts.PUT("/:id", admin, handlers.UpdatePostHandler(d.Posts))
		posts.DELETE("/:id", admin, handlers.DeletePostHandler(d.Posts))
		posts.GET("/:id/comments", handlers.ListPostCommentsHandler(d.Comments))
		posts.POST("/:id/comments", bearer, handlers.CreatePostCommentHandler(d.Comments))
	}

	comments := r.Group("/comments")
	{
		comments.GET("/:id", handlers.GetCommentHandler(d.Comments))
		comments.PUT("/:id", bearer, handlers.UpdateCommentHandler(d.Comments))
		comments.DELETE("/:id", bearer, handlers.DeleteCommentHandler(d.Comments))
	}

	users := r.Group("/users", admin)
	{
		users.GET("", handlers.ListUsersHandler(d.Users))
		users.POST("", handlers.CreateUserHandler(d.Users))
		users.DELETE("/:id", handlers.DeleteUserHandler(d.Users))
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.LoginHandler(d.Auth))
		auth.GET("/me", bearer, handlers.MeHandler(d.Auth))
		auth.POST("/registration", handlers.RegistrationHandler(d.Users))
		auth.POST("/registration-confirmation", handlers.RegistrationConfirmationHandler(d.Users))
	}

	if d.Config.Server.TestingRoutes {
		r.DELETE("/testing/all-data", handlers.ClearAllDataHandler(d.Testing))
	}

	return r
}
