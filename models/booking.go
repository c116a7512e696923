package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Payment outcomes recorded on a booking.
const (
	PaymentStatusPending = "pending"
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

// Payment methods. There is no external processor; the method is recorded
// for the salon's records only.
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Booking is the frozen snapshot of a completed checkout. Everything except
// Status and PaymentStatus is immutable after creation; TotalPrice and the
// product lines are captured at materialization time and never recomputed
// from the catalog.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	SessionID        string    `bson:"session_id" json:"sessionId,omitempty"`
	CustomerName     string    `bson:"customer_name" json:"customerName"`
	CustomerEmail    string    `bson:"customer_email" json:"customerEmail"`
	CustomerPhone    string    `bson:"customer_phone" json:"customerPhone,omitempty"`
	PackageID        string    `bson:"package_id" json:"packageId"`
	PackageName      string    `bson:"package_name" json:"packageName,omitempty"`
	EmployeeID       string    `bson:"employee_id" json:"employeeId"`
	Date             string    `bson:"date" json:"date"` // "2006-01-02", empty when no appointment was chosen
	Time             string    `bson:"time" json:"time"`
	Status           string    `bson:"status" json:"status"`
	TotalPrice       float64   `bson:"total_price" json:"totalPrice"`
	Products         []Product `bson:"products" json:"products"`
	ReminderEmail    bool      `bson:"reminder_email" json:"reminderEmail"`
	ReminderSMS      bool      `bson:"reminder_sms" json:"reminderSMS"`
	PaymentStatus    string    `bson:"payment_status" json:"paymentStatus"`
	PaymentMethod    string    `bson:"payment_method,omitempty" json:"paymentMethod,omitempty"`
	MarketingConsent bool      `bson:"marketing_consent" json:"marketingConsent"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// BookingFilter narrows booking list queries. Zero values mean "no filter".
type BookingFilter struct {
	StartDate string `form:"startDate" json:"startDate,omitempty"`
	EndDate   string `form:"endDate" json:"endDate,omitempty"`
	Status    string `form:"status" json:"status,omitempty"`
}

// BookingUpdate carries the partial fields a PATCH may change. Nil pointers
// leave the stored value untouched.
type BookingUpdate struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Date          *string `json:"date,omitempty"`
	Time          *string `json:"time,omitempty"`
}
