package main

import (
	"fmt"
	"time"

	"schedule-planner/pkg/config"
	"schedule-planner/pkg/database"
	"schedule-planner/pkg/jwt"
	"schedule-planner/pkg/logger"
	"schedule-planner/services/planner/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	userID, err := seedDatabase(db, log)
	if err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	token, err := jwtService.GenerateToken(userID, "user")
	if err != nil {
		log.Error("Failed to generate demo token: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
	fmt.Printf("Demo user token:\n%s\n", token)
}

func seedDatabase(db *gorm.DB, log *logger.Logger) (string, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &model.UserModel{
		Email:        "demo@test.com",
		PasswordHash: string(hashedPassword),
	}

	var existingUser model.UserModel
	result := db.Where("email = ?", user.Email).First(&existingUser)
	if result.Error == nil {
		log.Info("User %s already exists, skipping", user.Email)
		return existingUser.ID, nil
	}

	if err := db.Create(user).Error; err != nil {
		return "", fmt.Errorf("failed to create demo user: %w", err)
	}
	log.Info("Created user: %s", user.Email)

	monday := nextMonday(time.Now())
	samplePosts := []model.PostModel{
		{
			Platform:      "instagram",
			Title:         "Product launch teaser",
			Content:       "Something big is coming this week. Stay tuned!",
			ScheduledDate: monday.Format("2006-01-02"),
			ScheduledTime: "11:00",
		},
		{
			Platform:      "twitter",
			Title:         "Launch thread",
			Content:       "A thread on why we built this and what comes next.",
			ScheduledDate: monday.Format("2006-01-02"),
			ScheduledTime: "11:00",
		},
		{
			Platform:      "linkedin",
			Content:       "Hiring update and a look behind the scenes of our release week.",
			ScheduledDate: monday.AddDate(0, 0, 1).Format("2006-01-02"),
			ScheduledTime: "07:00",
		},
		{
			Platform:      "youtube",
			Title:         "Release walkthrough",
			Content:       "Full walkthrough of the new features, live on launch day.",
			ScheduledDate: monday.AddDate(0, 0, 2).Format("2006-01-02"),
			ScheduledTime: "14:00",
		},
		{
			Platform:      "blog",
			Title:         "Launch retrospective",
			Content:       "What went well, what broke, and what we learned.",
			ScheduledDate: monday.AddDate(0, 0, 4).Format("2006-01-02"),
		},
	}

	for i := range samplePosts {
		post := samplePosts[i]
		post.UserID = user.ID
		post.Status = "scheduled"
		if err := db.Create(&post).Error; err != nil {
			log.Error("Failed to create post %q: %v", post.Title, err)
			continue
		}
		log.Info("Created post: %s on %s", post.Platform, post.ScheduledDate)
	}

	return user.ID, nil
}

func nextMonday(from time.Time) time.Time {
	days := (int(time.Monday) - int(from.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return from.AddDate(0, 0, days)
}
