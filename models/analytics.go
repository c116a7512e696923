package models

// DashboardMetrics summarizes salon activity over a period.
type DashboardMetrics struct {
	Bookings      int     `json:"bookings"`
	Revenue       float64 `json:"revenue"`
	NewCustomers  int     `json:"newCustomers"`
	AverageRating float64 `json:"averageRating"`
}

// RevenuePoint is a single entry of the revenue timeline.
type RevenuePoint struct {
	Date    string  `bson:"_id" json:"date"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}
