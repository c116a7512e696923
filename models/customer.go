package models

import "time"

// Customer is a salon customer record.
type Customer struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone,omitempty"`
	MarketingConsent bool      `bson:"marketing_consent" json:"marketingConsent"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}
