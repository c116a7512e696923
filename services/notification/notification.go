package notification

import (
	"context"

	"meliyah/models"

	"go.uber.org/zap"
)

// NotificationService is the boundary to the delivery transport. The salon's
// actual mail provider sits behind this interface; failures here never reach
// the booking flow.
type NotificationService interface {
	SendBookingReminder(ctx context.Context, task models.ReminderTask) error
}

// LogNotificationService records delivery intents in the log. It stands in
// for the external transport in development and tests.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendBookingReminder(_ context.Context, task models.ReminderTask) error {
	s.Logger.Info("booking reminder due",
		zap.String("reminderID", task.ID),
		zap.String("channel", task.Channel),
		zap.String("recipient", task.Recipient),
		zap.String("bookingID", task.Booking.ID),
		zap.String("date", task.Booking.Date),
		zap.String("time", task.Booking.Time))
	return nil
}
