package models

// Service is a single bookable salon service. Catalog-owned and immutable.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Price       float64 `bson:"price" json:"price"`
	Category    string  `bson:"category" json:"category"`
}

// Package bundles an ordered set of services. The bundle price may differ
// from the sum of the included service prices.
type Package struct {
	ID                 string    `bson:"id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Description        string    `bson:"description" json:"description"`
	Services           []Service `bson:"services" json:"services"`
	Price              float64   `bson:"price" json:"price"`
	DiscountPercentage float64   `bson:"discount_percentage" json:"discountPercentage"`
}

// TimeSlot is one entry of an employee's weekly availability template.
type TimeSlot struct {
	Time      string `bson:"time" json:"time"`
	Available bool   `bson:"available" json:"available"`
}

// Availability maps a weekday label ("Montag".."Sonntag") to its ordered
// slots. A missing weekday means the employee does not work that day.
type Availability map[string][]TimeSlot

// Employee is a staff member with a fixed weekly availability template.
type Employee struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Role         string       `bson:"role" json:"role"`
	Image        string       `bson:"image" json:"image,omitempty"`
	Bio          string       `bson:"bio" json:"bio,omitempty"`
	Specialties  []string     `bson:"specialties" json:"specialties"`
	Availability Availability `bson:"availability" json:"availability"`
}

// Product is a retail item sold alongside appointments.
type Product struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	Image       string  `bson:"image" json:"image,omitempty"`
	Category    string  `bson:"category" json:"category"`
	Brand       string  `bson:"brand" json:"brand"`
	InStock     bool    `bson:"in_stock" json:"inStock"`
}
