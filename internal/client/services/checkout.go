package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/client/notify"
	"github.com/dmitrijs2005/carrental/internal/common"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

const DefaultTaxRate = 0.10

const (
	MsgLoginToBook     = "Please log in to make a booking"
	MsgDatesRequired   = "Please select pickup and return dates"
	MsgReturnAfter     = "Return date must be after pickup date"
	MsgPickupInPast    = "Pickup date cannot be in the past"
	MsgCarUnavailable  = "This car is not available for booking"
	MsgBookingComplete = "Booking confirmed! Email sent to your registered email address"
)

// Quote is the price breakdown of a rental. Amounts are rounded to cents.
type Quote struct {
	Days     int
	Subtotal float64
	Tax      float64
	Total    float64
}

// CheckoutService prices and books rentals.
type CheckoutService interface {
	Quote(car models.Car, start, end time.Time) Quote
	Book(ctx context.Context, user *models.User, carID string, start, end time.Time) (*models.Booking, error)
}

type checkoutService struct {
	store    RecordStore
	notifier notify.Notifier
	log      logging.Logger
	taxRate  float64
	now      func() time.Time
}

// NewCheckoutService builds a CheckoutService. A negative taxRate selects
// DefaultTaxRate.
func NewCheckoutService(store RecordStore, notifier notify.Notifier, log logging.Logger, taxRate float64) CheckoutService {
	if taxRate < 0 {
		taxRate = DefaultTaxRate
	}
	return &checkoutService{
		store:    store,
		notifier: notifier,
		log:      log.With("component", "checkout"),
		taxRate:  taxRate,
		now:      time.Now,
	}
}

// RentalDays counts started 24 hour periods between start and end.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

func (s *checkoutService) Quote(car models.Car, start, end time.Time) Quote {
	days := RentalDays(start, end)
	subtotal := float64(days) * car.PricePerDay
	tax := subtotal * s.taxRate
	return Quote{
		Days:     days,
		Subtotal: roundCents(subtotal),
		Tax:      roundCents(tax),
		Total:    roundCents(subtotal + tax),
	}
}

func (s *checkoutService) Book(ctx context.Context, user *models.User, carID string, start, end time.Time) (*models.Booking, error) {
	if user == nil {
		return nil, s.fail(common.ErrUnauthorized, MsgLoginToBook)
	}
	if start.IsZero() || end.IsZero() {
		return nil, s.fail(common.ErrValidation, MsgDatesRequired)
	}
	if !end.After(start) {
		return nil, s.fail(common.ErrValidation, MsgReturnAfter)
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if start.Before(today) {
		return nil, s.fail(common.ErrValidation, MsgPickupInPast)
	}

	cars, err := s.store.GetCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	car := findCar(cars, carID)
	if car == nil {
		return nil, s.fail(common.ErrNotFound, "Car not found")
	}
	if !car.Available {
		return nil, s.fail(common.ErrValidation, MsgCarUnavailable)
	}

	txn, err := common.MakeRandHexString(6)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transaction id: %w", err)
	}

	q := s.Quote(*car, start, end)
	b := models.Booking{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		CarID:         car.ID,
		StartDate:     start,
		EndDate:       end,
		TotalDays:     q.Days,
		TotalPrice:    q.Subtotal,
		Tax:           q.Tax,
		TotalAmount:   q.Total,
		Status:        models.BookingConfirmed,
		TransactionID: "TXN" + strings.ToUpper(txn),
		CreatedAt:     now.UTC(),
	}
	if err := s.store.AddBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.log.Info(ctx, "booking created", "booking_id", b.ID, "car_id", b.CarID, "user_id", b.UserID, "total", b.TotalAmount)
	s.notifier.Notify(notify.Success, MsgBookingComplete)
	return &b, nil
}

func (s *checkoutService) fail(kind error, msg string) error {
	s.notifier.Notify(notify.Error, msg)
	return common.NewError(kind, msg)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
