package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-planner/pkg/config"
	"schedule-planner/pkg/logger"
	"schedule-planner/pkg/queue"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	// Start processing the reminder queue in a goroutine
	go func() {
		log.Info("Starting reminder queue processor...")

		err := queueClient.ConsumeReminderTasks(func(task map[string]interface{}) error {
			return processReminderTask(log, task)
		})
		if err != nil {
			log.Error("Error starting reminder queue consumer: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down reminder worker...")

	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	log.Info("Reminder worker exited")
}

// processReminderTask records an upcoming publication. A task without a
// post_id is malformed and gets rejected so it is not requeued forever.
func processReminderTask(log *logger.Logger, task map[string]interface{}) error {
	taskType, _ := task["type"].(string)
	if taskType != "post_scheduled" {
		return fmt.Errorf("unknown reminder task type: %s", taskType)
	}

	postID, _ := task["post_id"].(string)
	if postID == "" {
		return fmt.Errorf("reminder task missing post_id: %+v", task)
	}

	userID, _ := task["user_id"].(string)
	platform, _ := task["platform"].(string)
	date, _ := task["scheduled_date"].(string)
	timeOfDay, _ := task["scheduled_time"].(string)

	when := date
	if timeOfDay != "" {
		when = date + " " + timeOfDay
	}

	log.Info("[REMINDER] Post %s (%s) for user %s is scheduled for %s", postID, platform, userID, when)
	return nil
}
