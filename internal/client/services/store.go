package services

import (
	"context"

	"github.com/dmitrijs2005/carrental/internal/client/models"
)

// RecordStore is the subset of *store.Store the services depend on.
type RecordStore interface {
	GetCars(ctx context.Context) ([]models.Car, error)
	SetCars(ctx context.Context, cars []models.Car) error
	GetUsers(ctx context.Context) ([]models.User, error)
	SetUsers(ctx context.Context, users []models.User) error
	GetBookings(ctx context.Context) ([]models.Booking, error)
	AddBooking(ctx context.Context, b models.Booking) error
	GetCurrentUser(ctx context.Context) (*models.User, error)
	SetCurrentUser(ctx context.Context, u *models.User) error
}
