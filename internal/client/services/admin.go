package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/common"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

const MsgAdminOnly = "Administrator access required"

type Stats struct {
	TotalCars      int
	TotalUsers     int
	TotalRevenue   float64
	ActiveBookings int
	AvailableCars  int
}

// AdminService backs the admin dashboard. Every call checks that the acting
// user is an administrator.
type AdminService interface {
	Authorize(actor *models.User) error
	Stats(ctx context.Context, actor *models.User) (Stats, error)
	Users(ctx context.Context, actor *models.User) ([]models.User, error)
	Bookings(ctx context.Context, actor *models.User) ([]BookingView, error)
	SetCarAvailability(ctx context.Context, actor *models.User, carID string, available bool) error
}

type adminService struct {
	store RecordStore
	log   logging.Logger
}

func NewAdminService(store RecordStore, log logging.Logger) AdminService {
	return &adminService{store: store, log: log.With("component", "admin")}
}

func (s *adminService) Authorize(actor *models.User) error {
	return requireAdmin(actor)
}

func requireAdmin(u *models.User) error {
	if u == nil || !u.IsAdmin {
		return common.NewError(common.ErrUnauthorized, MsgAdminOnly)
	}
	return nil
}

func (s *adminService) Stats(ctx context.Context, actor *models.User) (Stats, error) {
	if err := requireAdmin(actor); err != nil {
		return Stats{}, err
	}

	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load cars: %w", err)
	}
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load users: %w", err)
	}
	bookings, err := s.store.GetBookings(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load bookings: %w", err)
	}

	st := Stats{TotalCars: len(cars), TotalUsers: len(users)}
	for _, b := range bookings {
		st.TotalRevenue += b.TotalAmount
		if b.Status == models.BookingConfirmed {
			st.ActiveBookings++
		}
	}
	st.TotalRevenue = roundCents(st.TotalRevenue)
	for _, c := range cars {
		if c.Available {
			st.AvailableCars++
		}
	}
	return st, nil
}

func (s *adminService) Users(ctx context.Context, actor *models.User) ([]models.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

func (s *adminService) Bookings(ctx context.Context, actor *models.User) ([]BookingView, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	bookings, err := s.store.GetBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingView{Booking: b, Car: findCar(cars, b.CarID)})
	}
	return out, nil
}

func (s *adminService) SetCarAvailability(ctx context.Context, actor *models.User, carID string, available bool) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cars: %w", err)
	}
	for i := range cars {
		if cars[i].ID == carID {
			cars[i].Available = available
			if err := s.store.SetCars(ctx, cars); err != nil {
				return fmt.Errorf("failed to save cars: %w", err)
			}
			s.log.Info(ctx, "car availability changed", "car_id", carID, "available", available, "actor", actor.ID)
			return nil
		}
	}
	return common.NewError(common.ErrNotFound, "Car not found")
}
