package booking

import (
	bookingRepo "meliyah/database/repository/booking"
	"meliyah/models"
	"meliyah/services/reminder"
	"meliyah/services/selection"

	"go.uber.org/zap"
)

// BookingService freezes completed selections into bookings, records
// payment outcomes and handles the product-only cart checkout.
type BookingService interface {
	Materialize(sessionID string, contact models.ContactDetails) (*models.Booking, error)
	CompletePayment(bookingID, outcome, method string) (*models.Booking, error)
	CheckoutCart(sessionID string, contact models.ContactDetails) (*CartReceipt, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Selection selection.SelectionService
	Scheduler reminder.Scheduler
	Logger    *zap.Logger
}
