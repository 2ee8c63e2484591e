package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pixelpost/internal/handler"
	"pixelpost/internal/middleware"
	"pixelpost/internal/redis"
	"pixelpost/internal/services"
	"pixelpost/internal/transport/httpdto"
	"pixelpost/pkg/logger"
)

type Dependencies struct {
	AuthService   *services.AuthService
	PostService   *services.PostService
	UploadService *services.UploadService
	FeedService   *services.FeedService
	RateLimiter   *redis.RateLimiter
	Logger        *logger.Logger
}

// NewRouter wires middleware and routes. The text-post CRUD is open; the
// upload, feed and media-delete routes require a bearer token.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(deps.Logger))
	r.Use(middleware.ErrorHandler(deps.Logger))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	postHandler := handler.NewPostHandler(deps.PostService)
	uploadHandler := handler.NewUploadHandler(deps.UploadService)
	feedHandler := handler.NewFeedHandler(deps.FeedService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.StatusResponse{
			Status:  "ok",
			Message: "pixelpost api is running",
		})
	})
	r.GET("/hello-world", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "Hello, World!"})
	})

	auth := r.Group("/auth")
	if deps.RateLimiter != nil {
		auth.Use(middleware.AuthRateLimitMiddleware(deps.RateLimiter))
	}
	auth.POST("/register", authHandler.Register)
	auth.POST("/jwt/login", authHandler.Login)

	authed := middleware.AuthMiddleware(deps.AuthService)
	r.GET("/users/me", authed, authHandler.Me)

	posts := r.Group("/posts")
	posts.GET("", postHandler.List)
	posts.POST("", postHandler.Create)
	posts.GET("/:id", postHandler.Get)
	posts.PUT("/:id", postHandler.Update)
	posts.PATCH("/:id", postHandler.Patch)
	posts.DELETE("/:id", postHandler.Delete)

	upload := r.Group("/upload", authed)
	if deps.RateLimiter != nil {
		upload.Use(middleware.UploadRateLimitMiddleware(deps.RateLimiter))
	}
	upload.POST("", uploadHandler.Create)

	r.GET("/feed", authed, feedHandler.Get)
	r.DELETE("/post/:id", authed, uploadHandler.Delete)

	return r
}
