package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedule-planner/pkg/config"
	"schedule-planner/pkg/jwt"
	"schedule-planner/pkg/logger"
	"schedule-planner/pkg/middleware"
	"schedule-planner/pkg/queue"
	"schedule-planner/pkg/s3"
	plannerHTTP "schedule-planner/services/planner/internal/controller/http"
	"schedule-planner/services/planner/internal/repo"
	"schedule-planner/services/planner/internal/repo/local"
	"schedule-planner/services/planner/internal/repo/persistent"
	"schedule-planner/services/planner/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "schedule-planner/services/planner/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories. Without a database the planner falls back
	// to the file-backed store so it stays usable standalone.
	var postRepo repo.PostRepository
	if db != nil {
		postRepo = persistent.NewPostRepository(db)
	} else {
		store, err := local.NewStore(cfg.LocalStorePath)
		if err != nil {
			log.Error("Failed to open local store: %v", err)
			panic(err)
		}
		log.Warn("No database connection, using local store at %s", cfg.LocalStorePath)
		postRepo = store
	}

	// Initialize use cases
	settle := time.Duration(cfg.SettleIntervalMS) * time.Millisecond
	postUseCase := usecase.NewPostUseCase(postRepo, redisClient, queueClient, log, settle)

	// Initialize HTTP handlers
	postHandler := plannerHTTP.NewPostHandler(postUseCase, log)
	assistantHandler := plannerHTTP.NewAssistantHandler()

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))
	}

	{
		api.POST("/posts", postHandler.CreatePost)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/posts", postHandler.ListPosts)
		api.PUT("/posts/:id", postHandler.UpdatePost)
		api.DELETE("/posts/:id", postHandler.DeletePost)
		api.POST("/posts/:id/move", postHandler.MovePost)
		api.GET("/calendar/events", postHandler.ListEvents)
		api.GET("/platforms", postHandler.ListPlatforms)
		api.POST("/assistant/message", assistantHandler.SendMessage)
	}

	if s3Client != nil {
		uploadHandler := plannerHTTP.NewUploadHandler(s3Client, cfg.UploadFolder, log)
		api.POST("/upload", uploadHandler.UploadImage)
		api.DELETE("/upload", uploadHandler.DeleteImage)
	} else {
		log.Warn("No S3 client configured, upload endpoints disabled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Planner service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down planner service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	if db != nil {
		sqlDB, err := db.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Error("Error closing database: %v", err)
			}
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Planner service exited")
}
