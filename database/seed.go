package database

import (
	"context"
	"fmt"
	"time"

	"meliyah/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SeedCatalog inserts the salon's catalog into empty collections. Existing
// data is never overwritten, so operators can manage the catalog directly in
// MongoDB once the first run has populated it.
func SeedCatalog(ctx context.Context) error {
	db := DB()

	if err := seedCollection(ctx, db.Collection("services"), toDocs(catalogServices())); err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	if err := seedCollection(ctx, db.Collection("packages"), toDocs(catalogPackages())); err != nil {
		return fmt.Errorf("failed to seed packages: %w", err)
	}
	if err := seedCollection(ctx, db.Collection("employees"), toDocs(catalogEmployees())); err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}
	if err := seedCollection(ctx, db.Collection("products"), toDocs(catalogProducts())); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := seedCollection(ctx, db.Collection("salon_info"), []interface{}{SalonInfo()}); err != nil {
		return fmt.Errorf("failed to seed salon info: %w", err)
	}
	return nil
}

func seedCollection(ctx context.Context, coll *mongo.Collection, docs []interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := coll.CountDocuments(ctx, map[string]interface{}{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i, it := range items {
		docs[i] = it
	}
	return docs
}

func catalogServices() []models.Service {
	return []models.Service{
		{
			ID:          "cut-style",
			Name:        "Haarschnitt & Styling",
			Description: "Professioneller Haarschnitt mit Styling",
			Duration:    60,
			Price:       80,
			Category:    "hair",
		},
		{
			ID:          "color",
			Name:        "Färben",
			Description: "Premium Haarfarbe mit Pflege",
			Duration:    120,
			Price:       120,
			Category:    "hair",
		},
		{
			ID:          "treatment",
			Name:        "Luxus-Behandlung",
			Description: "Intensive Haarpflege mit hochwertigen Produkten",
			Duration:    45,
			Price:       60,
			Category:    "hair",
		},
	}
}

func catalogPackages() []models.Package {
	svcs := catalogServices()
	return []models.Package{
		{
			ID:                 "platinum",
			Name:               "Paket Platinum",
			Description:        "Das ultimative Verwöhnprogramm für höchste Ansprüche",
			Services:           []models.Service{svcs[0], svcs[1], svcs[2]},
			Price:              260,
			DiscountPercentage: 15,
		},
		{
			ID:                 "gold",
			Name:               "Paket Gold",
			Description:        "Perfekte Kombination aus Pflege und Styling",
			Services:           []models.Service{svcs[0], svcs[1]},
			Price:              180,
			DiscountPercentage: 10,
		},
		{
			ID:                 "silver",
			Name:               "Paket Silber",
			Description:        "Klassische Behandlung für den gepflegten Look",
			Services:           []models.Service{svcs[0]},
			Price:              80,
			DiscountPercentage: 0,
		},
	}
}

// weekGrid builds one weekday's slots from the fixed slot times and a
// per-slot availability mask.
func weekGrid(mask []bool) []models.TimeSlot {
	times := []string{"09:00", "10:00", "11:00", "14:00", "15:00"}
	slots := make([]models.TimeSlot, len(times))
	for i, t := range times {
		slots[i] = models.TimeSlot{Time: t, Available: mask[i]}
	}
	return slots
}

func catalogEmployees() []models.Employee {
	return []models.Employee{
		{
			ID:          "1",
			Name:        "Sarah Weber",
			Role:        "Senior Stylist",
			Image:       "https://images.unsplash.com/photo-1580618672591-eb180b1a973f?w=800",
			Bio:         "Über 10 Jahre Erfahrung in hochklassigen Salons",
			Specialties: []string{"Colorierung", "Hochsteckfrisuren", "Schnitt"},
			Availability: models.Availability{
				"Montag":     weekGrid([]bool{true, true, false, true, true}),
				"Dienstag":   weekGrid([]bool{true, false, true, true, true}),
				"Mittwoch":   weekGrid([]bool{true, true, true, false, true}),
				"Donnerstag": weekGrid([]bool{true, true, true, true, false}),
				"Freitag":    weekGrid([]bool{true, true, true, true, true}),
			},
		},
		{
			ID:          "2",
			Name:        "Michael Schmidt",
			Role:        "Master Stylist",
			Image:       "https://images.unsplash.com/photo-1537368910025-700350fe46c7?w=800",
			Bio:         "Spezialist für moderne Schnitte und Styling-Techniken",
			Specialties: []string{"Herrenschnitte", "Trending Styles", "Bartpflege"},
			Availability: models.Availability{
				"Montag":     weekGrid([]bool{true, false, true, true, true}),
				"Dienstag":   weekGrid([]bool{true, true, true, false, true}),
				"Mittwoch":   weekGrid([]bool{false, true, true, true, true}),
				"Donnerstag": weekGrid([]bool{true, true, false, true, true}),
				"Freitag":    weekGrid([]bool{true, true, true, true, true}),
			},
		},
	}
}

func catalogProducts() []models.Product {
	return []models.Product{
		{
			ID:          "cantu-curling-cream-1",
			Name:        "Cantu Curling Cream",
			Description: "Sheabutter Coconut Curling Cream für natürliche Locken",
			Price:       14.90,
			Image:       "https://images.unsplash.com/photo-1597354984706-fac992d9306f?w=800",
			Category:    "Styling",
			Brand:       "Cantu",
			InStock:     true,
		},
		{
			ID:          "cantu-moisturizing-cream-1",
			Name:        "Cantu Moisturizing Cream",
			Description: "Feuchtigkeitsspendende Styling-Creme für lockiges Haar",
			Price:       16.90,
			Image:       "https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?w=800",
			Category:    "Styling",
			Brand:       "Cantu",
			InStock:     true,
		},
		{
			ID:          "cantu-twist-lock-gel-1",
			Name:        "Cantu Twist & Lock Gel",
			Description: "Definierendes Gel für Twists und Locks",
			Price:       12.90,
			Image:       "https://images.unsplash.com/photo-1626790680787-de5e9a07bcf2?w=800",
			Category:    "Styling",
			Brand:       "Cantu",
			InStock:     true,
		},
	}
}

// SalonInfo is the static salon profile.
func SalonInfo() models.SalonInfo {
	return models.SalonInfo{
		Name:        "Meliyah afro-shop",
		Description: "Ihr Spezialist für Afro-Haarpflege in Frauenfeld",
		Address:     "Rheinstrasse 21, 8500 Frauenfeld",
		Phone:       "0774471179",
		Email:       "info@meliyah-afroshop.ch",
		OpeningHours: map[string]models.OpeningHours{
			"Montag":     {Open: "Geschlossen", Close: "Geschlossen"},
			"Dienstag":   {Open: "10:30", Close: "18:30"},
			"Mittwoch":   {Open: "10:30", Close: "18:30"},
			"Donnerstag": {Open: "10:30", Close: "18:30"},
			"Freitag":    {Open: "10:30", Close: "18:30"},
			"Samstag":    {Open: "10:30", Close: "17:00"},
			"Sonntag":    {Open: "Geschlossen", Close: "Geschlossen"},
		},
		Images: []string{
			"https://images.unsplash.com/photo-1560066984-138dadb4c035?w=800",
			"https://images.unsplash.com/photo-1633681926035-ec1ac984418a?w=800",
			"https://images.unsplash.com/photo-1522337660859-02fbefca4702?w=800",
		},
	}
}
