// File: services/booking/cart.go
package booking

import (
	"time"

	"meliyah/models"
	"meliyah/services/selection"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartReceipt summarizes a product-only checkout.
type CartReceipt struct {
	Items    []models.Product `json:"items"`
	Subtotal float64          `json:"subtotal"`
	Discount float64          `json:"discount"`
	Total    float64          `json:"total"`
}

// CheckoutCart completes a product-only order, independent of any
// appointment booking. It requires full contact data, empties the cart and,
// when the session also carries an upcoming appointment, schedules a
// reminder for it alongside the order confirmation.
func (s *DefaultBookingService) CheckoutCart(sessionID string, contact models.ContactDetails) (*CartReceipt, error) {
	sel, err := s.Selection.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if contact.Name == "" {
		return nil, selection.NewValidationError("name", "name is required")
	}
	if contact.Email == "" {
		return nil, selection.NewValidationError("email", "email address is required")
	}
	if contact.Phone == "" {
		return nil, selection.NewValidationError("phone", "phone number is required")
	}
	if len(sel.SelectedProducts) == 0 {
		return nil, selection.NewValidationError("cart", "cart is empty")
	}

	subtotal := selection.CartSubtotal(sel)
	total := selection.CartTotal(sel)
	receipt := &CartReceipt{
		Items:    append([]models.Product{}, sel.SelectedProducts...),
		Subtotal: subtotal,
		Discount: subtotal - total,
		Total:    total,
	}

	if sel.SelectedDate != "" {
		snapshot := models.Booking{
			ID:            uuid.New().String(),
			SessionID:     sel.SessionID,
			CustomerName:  contact.Name,
			CustomerEmail: contact.Email,
			CustomerPhone: contact.Phone,
			Date:          sel.SelectedDate,
			Time:          sel.SelectedTime,
			Products:      receipt.Items,
			TotalPrice:    total,
			CreatedAt:     time.Now(),
		}
		if sel.SelectedPackage != nil {
			snapshot.PackageID = sel.SelectedPackage.ID
			snapshot.PackageName = sel.SelectedPackage.Name
		}
		if sel.SelectedEmployee != nil {
			snapshot.EmployeeID = sel.SelectedEmployee.ID
		}
		if _, err := s.Scheduler.Schedule(snapshot); err != nil {
			s.Logger.Error("failed to schedule reminder at cart checkout",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	if _, err := s.Selection.ClearCart(sessionID); err != nil {
		return nil, err
	}

	s.Logger.Info("cart checked out",
		zap.String("sessionID", sessionID),
		zap.Int("items", len(receipt.Items)),
		zap.Float64("total", receipt.Total))
	return receipt, nil
}
