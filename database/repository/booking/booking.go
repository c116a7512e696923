package bookingRepo

import "meliyah/models"

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	Update(id string, upd models.BookingUpdate) (*models.Booking, error)
	List(filter models.BookingFilter) ([]models.Booking, error)
	// FindByEmployeeSlot returns the non-cancelled booking occupying the
	// given (employee, date, time) slot, or nil when the slot is free.
	FindByEmployeeSlot(employeeID, date, timeLabel string) (*models.Booking, error)
	CountAndRevenue(startDate, endDate string) (int, float64, error)
	RevenueTimeline(startDate, endDate string) ([]models.RevenuePoint, error)
}
