package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/common"
)

// BookingView is a booking joined with its car. Car is nil when the car has
// been removed from the catalog.
type BookingView struct {
	models.Booking
	Car *models.Car
}

// BookingService lists a user's bookings.
type BookingService interface {
	ForUser(ctx context.Context, userID string) ([]BookingView, error)
	Get(ctx context.Context, userID, bookingID string) (*BookingView, error)
}

type bookingService struct {
	store RecordStore
}

func NewBookingService(store RecordStore) BookingService {
	return &bookingService{store: store}
}

func (s *bookingService) ForUser(ctx context.Context, userID string) ([]BookingView, error) {
	bookings, cars, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BookingView, 0)
	for _, b := range bookings {
		if b.UserID == userID {
			out = append(out, BookingView{Booking: b, Car: findCar(cars, b.CarID)})
		}
	}
	return out, nil
}

func (s *bookingService) Get(ctx context.Context, userID, bookingID string) (*BookingView, error) {
	bookings, cars, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.ID == bookingID && b.UserID == userID {
			return &BookingView{Booking: b, Car: findCar(cars, b.CarID)}, nil
		}
	}
	return nil, common.NewError(common.ErrNotFound, "Booking not found")
}

func (s *bookingService) load(ctx context.Context) ([]models.Booking, []models.Car, error) {
	bookings, err := s.store.GetBookings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load cars: %w", err)
	}
	return bookings, cars, nil
}
