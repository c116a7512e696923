package models

import "time"

// ReminderTask is a scheduled notification tied to a booking, fired a fixed
// lead time before the appointment. It is also the asynq task payload the
// reminder worker decodes.
type ReminderTask struct {
	ID        string    `json:"id"`
	Channel   string    `json:"channel"` // currently always "email"
	TriggerAt time.Time `json:"triggerAt"`
	Recipient string    `json:"recipient"`
	Booking   Booking   `json:"booking"`
}
