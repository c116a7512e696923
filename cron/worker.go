package cron

import (
	"context"
	"encoding/json"
	"time"

	"meliyah/config"
	"meliyah/models"
	"meliyah/services/notification"
	"meliyah/services/reminder"
	"meliyah/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background. It
// consumes the tasks the scheduler enqueued and hands them to the
// notification transport at their trigger time.
func InitReminderWorker(notifSvc notification.NotificationService) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(reminder.TypeSendReminder, handleReminderTask(notifSvc, logger))

	go func() {
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var rt models.ReminderTask
		if err := json.Unmarshal(task.Payload(), &rt); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		logger.Info("triggering booking reminder",
			zap.String("reminderID", rt.ID),
			zap.String("recipient", rt.Recipient),
			zap.String("bookingID", rt.Booking.ID))

		if err := notifSvc.SendBookingReminder(ctx, rt); err != nil {
			logger.Error("failed to deliver booking reminder",
				zap.String("reminderID", rt.ID), zap.Error(err))
			return err
		}
		return nil
	}
}
