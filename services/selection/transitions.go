// Package selection implements the appointment/cart state machine. The
// transition functions in this file are pure: they mutate only the Selection
// they are handed and perform no I/O, which keeps every rule testable
// without Redis or MongoDB. The session-store plumbing lives in service.go.
package selection

import (
	"strings"

	"meliyah/models"
	"meliyah/services/availability"
)

// Stage is the explicit progress marker derived from which fields are set.
// The original flow inferred it implicitly from nil checks scattered over
// the UI; deriving it in one place keeps illegal combinations (a time
// without a date) impossible to reach through the transitions below.
type Stage int

const (
	StageEmpty Stage = iota
	StagePackageChosen
	StageEmployeeChosen
	StageTimeChosen
)

// CouponCode is the only retail discount code the shop accepts.
const CouponCode = "WELCOME10"

// couponRate is the discount WELCOME10 applies to the product subtotal.
const couponRate = 0.10

// NewSelection returns an empty Selection for a fresh session.
func NewSelection(sessionID string) *models.Selection {
	return &models.Selection{
		SessionID:        sessionID,
		SelectedProducts: []models.Product{},
	}
}

// CurrentStage derives the explicit stage of a Selection.
func CurrentStage(sel *models.Selection) Stage {
	switch {
	case sel.SelectedPackage == nil:
		return StageEmpty
	case sel.SelectedEmployee == nil:
		return StagePackageChosen
	case sel.SelectedDate == "" || sel.SelectedTime == "":
		return StageEmployeeChosen
	default:
		return StageTimeChosen
	}
}

// SelectPackage sets the chosen package. Other fields are kept, so a
// customer re-entering the flow does not lose a prior date or time choice.
func SelectPackage(sel *models.Selection, pkg models.Package) {
	sel.SelectedPackage = &pkg
}

// SelectEmployee sets the chosen staff member.
func SelectEmployee(sel *models.Selection, employee models.Employee) {
	sel.SelectedEmployee = &employee
}

// SelectDate sets the appointment date ("2006-01-02"). It stores only what
// it is told; invalidating a previously chosen time that no longer fits the
// new date is the caller's job (the service layer does exactly that).
func SelectDate(sel *models.Selection, date string) {
	sel.SelectedDate = date
}

// SelectTime sets the appointment time. An empty label explicitly clears the
// choice. A non-empty label is validated against the selected employee's
// calendar for the selected date's weekday; unavailable or unknown slots are
// rejected with no state change.
func SelectTime(sel *models.Selection, timeLabel string) error {
	if timeLabel == "" {
		sel.SelectedTime = ""
		return nil
	}
	if sel.SelectedEmployee == nil {
		return NewValidationError("time", "no employee selected")
	}
	if sel.SelectedDate == "" {
		return NewValidationError("time", "no appointment date selected")
	}
	weekday, err := availability.WeekdayLabel(sel.SelectedDate)
	if err != nil {
		return NewValidationError("date", err.Error())
	}
	if !availability.SlotAvailable(*sel.SelectedEmployee, weekday, timeLabel) {
		return NewValidationError("time", "slot is not available")
	}
	sel.SelectedTime = timeLabel
	return nil
}

// AddProduct appends a cart line. There is deliberately no dedup and no
// stock check: two identical lines represent two units.
func AddProduct(sel *models.Selection, product models.Product) {
	sel.SelectedProducts = append(sel.SelectedProducts, product)
}

// RemoveProduct removes every cart line sharing the given product id.
func RemoveProduct(sel *models.Selection, productID string) {
	kept := sel.SelectedProducts[:0]
	for _, p := range sel.SelectedProducts {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	sel.SelectedProducts = kept
}

// ApplyCoupon validates a retail coupon code and records its discount rate.
// The discount applies to the product subtotal only, never to the package.
func ApplyCoupon(sel *models.Selection, code string) error {
	if strings.ToUpper(code) != CouponCode {
		return NewValidationError("coupon", "invalid coupon code")
	}
	sel.DiscountRate = couponRate
	return nil
}

// ResetAfterCheckout clears the appointment choices while keeping the
// product cart. Appointment and cart are checked out independently, so a
// completed booking must not empty the cart.
func ResetAfterCheckout(sel *models.Selection) {
	sel.SelectedPackage = nil
	sel.SelectedEmployee = nil
	sel.SelectedDate = ""
	sel.SelectedTime = ""
}

// ClearCart empties the product cart after a product-only checkout.
func ClearCart(sel *models.Selection) {
	sel.SelectedProducts = []models.Product{}
	sel.DiscountRate = 0
}

// PackageTotal sums the prices of the services inside the chosen package.
func PackageTotal(sel *models.Selection) float64 {
	if sel.SelectedPackage == nil {
		return 0
	}
	var sum float64
	for _, svc := range sel.SelectedPackage.Services {
		sum += svc.Price
	}
	return sum
}

// CartSubtotal sums the current cart lines before any coupon.
func CartSubtotal(sel *models.Selection) float64 {
	var sum float64
	for _, p := range sel.SelectedProducts {
		sum += p.Price
	}
	return sum
}

// CartTotal is the cart subtotal with the applied coupon discount.
func CartTotal(sel *models.Selection) float64 {
	subtotal := CartSubtotal(sel)
	return subtotal - subtotal*sel.DiscountRate
}

// TotalPrice is the figure shown to the customer before submission and the
// figure frozen into a Booking at materialization: package services plus
// cart products.
func TotalPrice(sel *models.Selection) float64 {
	return PackageTotal(sel) + CartSubtotal(sel)
}
