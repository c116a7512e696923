package models

// Selection holds a customer's in-progress choice of package, employee,
// appointment slot and retail products. One Selection exists per browsing
// session; it is only ever mutated through the selection service's
// transitions.
type Selection struct {
	SessionID        string    `json:"sessionId"`
	SelectedPackage  *Package  `json:"selectedPackage,omitempty"`
	SelectedEmployee *Employee `json:"selectedEmployee,omitempty"`
	SelectedDate     string    `json:"selectedDate,omitempty"` // "2006-01-02"
	SelectedTime     string    `json:"selectedTime,omitempty"`
	SelectedProducts []Product `json:"selectedProducts"`
	DiscountRate     float64   `json:"discountRate,omitempty"`
}

// ContactDetails is the customer data submitted at checkout.
type ContactDetails struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	AcceptTerms      bool   `json:"acceptTerms"`
	MarketingConsent bool   `json:"marketingConsent"`
}
