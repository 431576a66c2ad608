package main

import (
	"schedule-planner/pkg/cache"
	"schedule-planner/pkg/config"
	"schedule-planner/pkg/database"
	"schedule-planner/pkg/logger"
	"schedule-planner/pkg/queue"
	"schedule-planner/pkg/s3"
	"schedule-planner/services/planner/internal/app"
)

// @title           Content Schedule Planner API
// @version         1.0
// @description     Calendar-based scheduling service for social media posts

// @contact.name   API Support

// @host      localhost:8001
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.New()

	// A missing database is not fatal: app.Run falls back to the
	// file-backed store.
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Warn("Failed to connect to database: %v", err)
		db = nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis, caching and rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client, uploads disabled: %v", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ, reminders disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
