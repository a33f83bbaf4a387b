package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/common"
)

type PriceRange string

const (
	PriceAll    PriceRange = "all"
	PriceLow    PriceRange = "low"
	PriceMedium PriceRange = "medium"
	PriceHigh   PriceRange = "high"
)

type Availability string

const (
	AvailabilityAll       Availability = "all"
	AvailabilityAvailable Availability = "available"
	AvailabilityBooked    Availability = "booked"
)

// Filter narrows the catalog. Zero values match everything.
type Filter struct {
	Search       string
	Brand        string
	Price        PriceRange
	Availability Availability
}

// Match reports whether c satisfies every criterion of f.
func (f Filter) Match(c models.Car) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(c.Brand), q) && !strings.Contains(strings.ToLower(c.Model), q) {
			return false
		}
	}
	if f.Brand != "" && f.Brand != "all" && c.Brand != f.Brand {
		return false
	}

	switch f.Price {
	case PriceLow:
		if c.PricePerDay > 50 {
			return false
		}
	case PriceMedium:
		if c.PricePerDay <= 50 || c.PricePerDay > 100 {
			return false
		}
	case PriceHigh:
		if c.PricePerDay <= 100 {
			return false
		}
	}

	switch f.Availability {
	case AvailabilityAvailable:
		return c.Available
	case AvailabilityBooked:
		return !c.Available
	}
	return true
}

// CatalogService answers read-only queries over the car collection.
type CatalogService interface {
	List(ctx context.Context, f Filter) ([]models.Car, error)
	Brands(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*models.Car, error)
}

type catalogService struct {
	store RecordStore
}

func NewCatalogService(store RecordStore) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) List(ctx context.Context, f Filter) ([]models.Car, error) {
	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	out := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *catalogService) Brands(ctx context.Context) ([]string, error) {
	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	seen := make(map[string]struct{}, len(cars))
	var out []string
	for _, c := range cars {
		if _, ok := seen[c.Brand]; ok {
			continue
		}
		seen[c.Brand] = struct{}{}
		out = append(out, c.Brand)
	}
	return out, nil
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.Car, error) {
	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	if c := findCar(cars, id); c != nil {
		return c, nil
	}
	return nil, common.NewError(common.ErrNotFound, "Car not found")
}

func findCar(cars []models.Car, id string) *models.Car {
	for i := range cars {
		if cars[i].ID == id {
			c := cars[i]
			return &c
		}
	}
	return nil
}
