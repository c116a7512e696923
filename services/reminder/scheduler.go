// Package reminder schedules appointment reminder tasks. The scheduler's
// responsibility ends at enqueuing a well-formed task: delivery is the
// notification transport's concern and there is no retry here.
package reminder

import (
	"encoding/json"
	"fmt"
	"time"

	"meliyah/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeSendReminder is the asynq task type for booking reminders.
const TypeSendReminder = "reminder:send"

// leadTime is the fixed interval between a reminder and its appointment.
const leadTime = 24 * time.Hour

// TriggerAt computes the reminder trigger: one day before the appointment
// date, at the time-of-day of the scheduling call. Past trigger times are
// returned as-is; whether a late reminder still gets delivered is the
// transport's call.
func TriggerAt(appointmentDate string, now time.Time) (time.Time, error) {
	day, err := time.Parse("2006-01-02", appointmentDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid appointment date %q: %w", appointmentDate, err)
	}
	appointment := time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	return appointment.Add(-leadTime), nil
}

// Scheduler registers a reminder for a booking. At most one attempt per
// booking, fire-and-forget.
type Scheduler interface {
	Schedule(booking models.Booking) (*models.ReminderTask, error)
}

// AsynqScheduler enqueues reminder tasks on the Redis-backed asynq queue
// with ProcessAt set to the computed trigger time.
type AsynqScheduler struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqScheduler(client *asynq.Client, logger *zap.Logger) *AsynqScheduler {
	return &AsynqScheduler{Client: client, Logger: logger}
}

func (s *AsynqScheduler) Schedule(booking models.Booking) (*models.ReminderTask, error) {
	triggerAt, err := TriggerAt(booking.Date, time.Now())
	if err != nil {
		return nil, err
	}

	task := models.ReminderTask{
		ID:        uuid.New().String(),
		Channel:   "email",
		TriggerAt: triggerAt,
		Recipient: booking.CustomerEmail,
		Booking:   booking,
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder task: %w", err)
	}

	info, err := s.Client.Enqueue(asynq.NewTask(TypeSendReminder, payload), asynq.ProcessAt(triggerAt))
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	s.Logger.Info("reminder scheduled",
		zap.String("taskID", info.ID),
		zap.String("bookingID", booking.ID),
		zap.Time("triggerAt", triggerAt))
	return &task, nil
}
