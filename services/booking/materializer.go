// File: services/booking/materializer.go
package booking

import (
	"errors"
	"fmt"
	"time"

	"meliyah/models"
	"meliyah/services/selection"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Materialize freezes the session's Selection plus the customer's contact
// data into an immutable Booking. Validation failures reject the checkout
// with no mutation anywhere; on success the booking is persisted and, when
// an appointment date was chosen, a reminder is scheduled fire-and-forget.
// The Selection itself is NOT cleared here: that happens only once payment
// succeeds.
func (s *DefaultBookingService) Materialize(sessionID string, contact models.ContactDetails) (*models.Booking, error) {
	sel, err := s.Selection.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if contact.Email == "" {
		return nil, selection.NewValidationError("email", "email address is required")
	}
	if !contact.AcceptTerms {
		return nil, selection.NewValidationError("acceptTerms", "terms must be accepted")
	}
	if sel.SelectedPackage == nil {
		return nil, selection.NewValidationError("package", "no package selected")
	}

	// Reject the checkout when another customer already holds the slot.
	if sel.SelectedEmployee != nil && sel.SelectedDate != "" && sel.SelectedTime != "" {
		occupied, err := s.Repo.FindByEmployeeSlot(sel.SelectedEmployee.ID, sel.SelectedDate, sel.SelectedTime)
		if err != nil {
			return nil, fmt.Errorf("failed to verify slot availability: %w", err)
		}
		if occupied != nil {
			return nil, selection.NewValidationError("time", "slot is already booked")
		}
	}

	booking := snapshotBooking(sel, contact)
	if err := s.Repo.Create(booking); err != nil {
		return nil, err
	}

	// Fire-and-forget: a failed reminder enqueue must not roll the booking
	// back, it only gets logged.
	if sel.SelectedDate != "" {
		if _, err := s.Scheduler.Schedule(*booking); err != nil {
			s.Logger.Error("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	s.Logger.Info("booking materialized",
		zap.String("bookingID", booking.ID),
		zap.String("sessionID", sessionID),
		zap.Float64("totalPrice", booking.TotalPrice))
	return booking, nil
}

// snapshotBooking copies everything out of the live Selection so later cart
// mutations can never alter a submitted booking.
func snapshotBooking(sel *models.Selection, contact models.ContactDetails) *models.Booking {
	booking := &models.Booking{
		ID:               uuid.New().String(),
		SessionID:        sel.SessionID,
		CustomerName:     contact.Name,
		CustomerEmail:    contact.Email,
		CustomerPhone:    contact.Phone,
		Date:             sel.SelectedDate,
		Time:             sel.SelectedTime,
		Status:           models.BookingStatusPending,
		TotalPrice:       selection.TotalPrice(sel),
		Products:         append([]models.Product{}, sel.SelectedProducts...),
		ReminderEmail:    true,
		ReminderSMS:      contact.Phone != "",
		PaymentStatus:    models.PaymentStatusPending,
		MarketingConsent: contact.MarketingConsent,
		CreatedAt:        time.Now(),
	}
	if sel.SelectedPackage != nil {
		booking.PackageID = sel.SelectedPackage.ID
		booking.PackageName = sel.SelectedPackage.Name
	}
	if sel.SelectedEmployee != nil {
		booking.EmployeeID = sel.SelectedEmployee.ID
	}
	return booking
}

// CompletePayment records the payment outcome on a pending booking. There
// is no external processor; the client reports the outcome of its simulated
// card or cash payment. Success confirms the booking and clears the
// appointment selections of the session it came from; failure keeps booking
// and Selection intact so the customer can retry with another payment
// method.
func (s *DefaultBookingService) CompletePayment(bookingID, outcome, method string) (*models.Booking, error) {
	if outcome != models.PaymentStatusSuccess && outcome != models.PaymentStatusFailed {
		return nil, selection.NewValidationError("outcome", "outcome must be success or failed")
	}
	if method != "" && method != models.PaymentMethodCard && method != models.PaymentMethodCash {
		return nil, selection.NewValidationError("method", "method must be card or cash")
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	upd := models.BookingUpdate{PaymentStatus: &outcome}
	if method != "" {
		upd.PaymentMethod = &method
	}
	if outcome == models.PaymentStatusSuccess {
		confirmed := models.BookingStatusConfirmed
		upd.Status = &confirmed
	}
	updated, err := s.Repo.Update(bookingID, upd)
	if err != nil {
		return nil, err
	}

	if outcome == models.PaymentStatusSuccess && booking.SessionID != "" {
		if _, err := s.Selection.ResetAfterCheckout(booking.SessionID); err != nil {
			// The session may have expired in the meantime; the paid booking
			// stands either way.
			if !errors.Is(err, selection.ErrSessionNotFound) {
				s.Logger.Warn("failed to reset session after payment",
					zap.String("sessionID", booking.SessionID), zap.Error(err))
			}
		}
	}

	s.Logger.Info("payment outcome recorded",
		zap.String("bookingID", bookingID), zap.String("outcome", outcome))
	return updated, nil
}
