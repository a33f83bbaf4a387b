package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/cryptox"
)

const (
	AdminID       = "admin-1"
	AdminEmail    = "admin@rental.com"
	AdminPassword = "admin123"
)

// InitializeData seeds every collection slot that is absent. Slots are
// checked independently, so a store with users but no cars only gets cars.
// Existing slots are never touched.
func (s *Store) InitializeData(ctx context.Context, hasher cryptox.PasswordHasher) error {
	if err := s.seedIfAbsent(ctx, KeyCars, func() (any, error) {
		return SeedCars(), nil
	}); err != nil {
		return err
	}

	if err := s.seedIfAbsent(ctx, KeyUsers, func() (any, error) {
		hash, err := hasher.Hash([]byte(AdminPassword))
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		return []models.User{{
			ID:        AdminID,
			Email:     AdminEmail,
			Password:  hash,
			FirstName: "Admin",
			LastName:  "User",
			Phone:     "+1234567890",
			IsAdmin:   true,
			CreatedAt: time.Now().UTC(),
		}}, nil
	}); err != nil {
		return err
	}

	return s.seedIfAbsent(ctx, KeyBookings, func() (any, error) {
		return []models.Booking{}, nil
	})
}

func (s *Store) seedIfAbsent(ctx context.Context, key string, build func() (any, error)) error {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		return nil
	}

	v, err := build()
	if err != nil {
		return err
	}
	if err := setValue(ctx, s.kv, key, v); err != nil {
		return err
	}
	s.log.Info(ctx, "seeded slot", "key", key)
	return nil
}

// SeedCars returns a fresh copy of the default catalog.
func SeedCars() []models.Car {
	return []models.Car{
		{
			ID: "1", Brand: "Tesla", Model: "Model 3", Year: 2023, PricePerDay: 89,
			Image:    "https://images.unsplash.com/photo-1560958089-b8a1929cea89?w=800&h=600&fit=crop",
			Category: models.CategoryLuxury, Transmission: models.TransmissionAutomatic, FuelType: models.FuelElectric,
			Seats: 5, Features: []string{"Autopilot", "Premium Audio", "Glass Roof", "Supercharging"},
			Available: true, Rating: 4.8, Reviews: 124,
		},
		{
			ID: "2", Brand: "BMW", Model: "X5", Year: 2023, PricePerDay: 125,
			Image:    "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&h=600&fit=crop",
			Category: models.CategorySUV, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 7, Features: []string{"All-Wheel Drive", "Premium Interior", "Navigation", "Heated Seats"},
			Available: true, Rating: 4.7, Reviews: 89,
		},
		{
			ID: "3", Brand: "Audi", Model: "A4", Year: 2022, PricePerDay: 75,
			Image:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
			Category: models.CategoryMidsize, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 5, Features: []string{"Quattro AWD", "Virtual Cockpit", "Premium Plus", "Bang & Olufsen"},
			Available: true, Rating: 4.6, Reviews: 67,
		},
		{
			ID: "4", Brand: "Toyota", Model: "Camry", Year: 2023, PricePerDay: 65,
			Image:    "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?w=800&h=600&fit=crop",
			Category: models.CategoryMidsize, Transmission: models.TransmissionAutomatic, FuelType: models.FuelHybrid,
			Seats: 5, Features: []string{"Hybrid Engine", "Toyota Safety 2.0", "Wireless Charging", "JBL Audio"},
			Available: true, Rating: 4.5, Reviews: 156,
		},
		{
			ID: "5", Brand: "Mercedes", Model: "C-Class", Year: 2023, PricePerDay: 95,
			Image:    "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&h=600&fit=crop",
			Category: models.CategoryLuxury, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 5, Features: []string{"MBUX Infotainment", "AMG Line", "Panoramic Roof", "Burmester Audio"},
			Available: true, Rating: 4.7, Reviews: 93,
		},
		{
			ID: "6", Brand: "Honda", Model: "Civic", Year: 2022, PricePerDay: 45,
			Image:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
			Category: models.CategoryCompact, Transmission: models.TransmissionManual, FuelType: models.FuelPetrol,
			Seats: 5, Features: []string{"Honda Sensing", "Apple CarPlay", "LED Headlights", "Turbo Engine"},
			Available: true, Rating: 4.4, Reviews: 203,
		},
		{
			ID: "7", Brand: "Ford", Model: "Explorer", Year: 2023, PricePerDay: 85,
			Image:    "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800&h=600&fit=crop",
			Category: models.CategorySUV, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 7, Features: []string{"4WD", "Third Row Seating", "SYNC 4", "Co-Pilot360"},
			Available: true, Rating: 4.3, Reviews: 78,
		},
		{
			ID: "8", Brand: "Nissan", Model: "Altima", Year: 2022, PricePerDay: 55,
			Image:    "https://images.unsplash.com/photo-1583121274602-3e2820c69888?w=800&h=600&fit=crop",
			Category: models.CategoryMidsize, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 5, Features: []string{"ProPILOT Assist", "Zero Gravity Seats", "Bose Audio", "Remote Start"},
			Available: false, Rating: 4.2, Reviews: 134,
		},
		{
			ID: "9", Brand: "Porsche", Model: "Macan", Year: 2023, PricePerDay: 145,
			Image:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
			Category: models.CategoryLuxury, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 5, Features: []string{"Sport Chrono", "Air Suspension", "Bose Surround", "Porsche Connect"},
			Available: true, Rating: 4.9, Reviews: 45,
		},
		{
			ID: "10", Brand: "Chevrolet", Model: "Malibu", Year: 2022, PricePerDay: 50,
			Image:    "https://images.unsplash.com/photo-1580273916550-e323be2ae537?w=800&h=600&fit=crop",
			Category: models.CategoryMidsize, Transmission: models.TransmissionAutomatic, FuelType: models.FuelPetrol,
			Seats: 5, Features: []string{"MyLink Infotainment", "OnStar", "Teen Driver", "Wireless Charging"},
			Available: true, Rating: 4.1, Reviews: 167,
		},
	}
}
