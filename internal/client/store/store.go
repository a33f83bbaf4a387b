// Package store is the local record store: four fixed slots holding the car
// catalog, the user accounts, the bookings and the active session.
//
// Every write replaces exactly one slot. Multi-step updates such as
// AddBooking are read-modify-write sequences and are not atomic; the store
// assumes a single active session per data directory.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/carrental/internal/client/kv"
	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/common"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

const (
	KeyCars        = "car_rental_cars"
	KeyUsers       = "car_rental_users"
	KeyBookings    = "car_rental_bookings"
	KeyCurrentUser = "car_rental_current_user"
)

// Keys lists every slot owned by the store.
var Keys = []string{KeyCars, KeyUsers, KeyBookings, KeyCurrentUser}

type Store struct {
	kv  kv.Store
	log logging.Logger
}

func New(s kv.Store, log logging.Logger) *Store {
	return &Store{kv: s, log: log.With("component", "store")}
}

func (s *Store) GetCars(ctx context.Context) ([]models.Car, error) {
	return getSlice[models.Car](ctx, s.kv, KeyCars)
}

func (s *Store) SetCars(ctx context.Context, cars []models.Car) error {
	return setValue(ctx, s.kv, KeyCars, nonNil(cars))
}

func (s *Store) GetUsers(ctx context.Context) ([]models.User, error) {
	return getSlice[models.User](ctx, s.kv, KeyUsers)
}

func (s *Store) SetUsers(ctx context.Context, users []models.User) error {
	return setValue(ctx, s.kv, KeyUsers, nonNil(users))
}

func (s *Store) GetBookings(ctx context.Context) ([]models.Booking, error) {
	return getSlice[models.Booking](ctx, s.kv, KeyBookings)
}

func (s *Store) SetBookings(ctx context.Context, bookings []models.Booking) error {
	return setValue(ctx, s.kv, KeyBookings, nonNil(bookings))
}

// AddBooking appends b to the bookings slot.
func (s *Store) AddBooking(ctx context.Context, b models.Booking) error {
	bookings, err := s.GetBookings(ctx)
	if err != nil {
		return err
	}
	return s.SetBookings(ctx, append(bookings, b))
}

// GetCurrentUser returns the session user, or nil when nobody is signed in.
// A session slot that does not decode is removed and reported as absent.
func (s *Store) GetCurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	u, err := decodeRecord[models.User](KeyCurrentUser, raw)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable session", "error", err)
		if derr := s.kv.Delete(ctx, KeyCurrentUser); derr != nil {
			return nil, fmt.Errorf("failed to clear corrupted session: %w", derr)
		}
		return nil, nil
	}
	return &u, nil
}

// SetCurrentUser stores u as the session user. A nil u removes the slot.
func (s *Store) SetCurrentUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.kv.Delete(ctx, KeyCurrentUser)
	}
	return setValue(ctx, s.kv, KeyCurrentUser, u)
}

// Export returns the raw contents of every slot that is set.
func (s *Store) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	all, err := s.kv.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(Keys))
	for _, k := range Keys {
		if v, ok := all[k]; ok {
			out[k] = json.RawMessage(v)
		}
	}
	return out, nil
}

// Reset drops every slot, including the session.
func (s *Store) Reset(ctx context.Context) error {
	return s.kv.Clear(ctx)
}

type record interface {
	Validate() error
}

func getSlice[T record](ctx context.Context, s kv.Store, key string) ([]T, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, corrupted(key, err)
	}
	for i, r := range out {
		if err := r.Validate(); err != nil {
			return nil, corrupted(fmt.Sprintf("%s[%d]", key, i), err)
		}
	}
	return nonNil(out), nil
}

func decodeRecord[T record](key string, raw []byte) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, corrupted(key, err)
	}
	if err := out.Validate(); err != nil {
		return out, corrupted(key, err)
	}
	return out, nil
}

func setValue(ctx context.Context, s kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot[%s]: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}

func corrupted(where string, err error) error {
	return errors.Join(fmt.Errorf("%w: %s", common.ErrStorageCorrupted, where), err)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
