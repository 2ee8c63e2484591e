package main

import (
	"context"
	"fmt"
	"log"

	"pixelpost/config"
	"pixelpost/internal/domain/post"
	"pixelpost/internal/domain/user"
	"pixelpost/internal/redis"
	"pixelpost/internal/repository"
	"pixelpost/internal/server"
	"pixelpost/internal/services"
	"pixelpost/internal/storage"
	"pixelpost/pkg/database"
	"pixelpost/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	appLogger := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(appLogger)

	// Connect to Database
	database.Connect(cfg)

	// Create tables if they do not exist yet
	if err := database.DB.AutoMigrate(
		&user.User{},
		&post.TextPost{},
		&post.Post{},
	); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Starter dataset for the text-post variant
	if err := database.SeedTextPosts(database.DB); err != nil {
		log.Fatalf("Failed to seed text posts: %v", err)
	}

	redis.Initialize(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	limiter := redis.NewRateLimiter(redis.GetClient(), redis.DefaultRateLimitConfig())

	gateway, err := storage.NewClient(context.Background(), storage.S3Config{
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3AccessKey,
		SecretKey:  cfg.S3SecretKey,
		Endpoint:   cfg.S3Endpoint,
		PublicBase: cfg.S3PublicBase,
	})
	if err != nil {
		log.Fatalf("Failed to configure upload gateway: %v", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	textPostRepo := repository.NewTextPostRepository(database.DB)
	postRepo := repository.NewPostRepository(database.DB)

	authService := services.NewAuthService(userRepo, cfg)
	postService := services.NewPostService(textPostRepo)
	uploadService := services.NewUploadService(postRepo, gateway, cfg.StagingDir, appLogger)
	feedService := services.NewFeedService(postRepo, userRepo)

	router := server.NewRouter(server.Dependencies{
		AuthService:   authService,
		PostService:   postService,
		UploadService: uploadService,
		FeedService:   feedService,
		RateLimiter:   limiter,
		Logger:        appLogger,
	})

	log.Printf("Starting server on port %s", cfg.AppPort)
	if err := router.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
