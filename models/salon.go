package models

// OpeningHours holds a single day's opening window. "Geschlossen" marks a
// closed day.
type OpeningHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// SalonInfo describes the salon itself.
type SalonInfo struct {
	Name         string                  `bson:"name" json:"name"`
	Description  string                  `bson:"description" json:"description"`
	Address      string                  `bson:"address" json:"address"`
	Phone        string                  `bson:"phone" json:"phone"`
	Email        string                  `bson:"email" json:"email"`
	OpeningHours map[string]OpeningHours `bson:"opening_hours" json:"openingHours"`
	Images       []string                `bson:"images" json:"images,omitempty"`
}
