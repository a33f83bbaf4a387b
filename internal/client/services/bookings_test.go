package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/common"
)

func booking(id, userID, carID string, amount float64, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID: id, UserID: userID, CarID: carID,
		StartDate: fixedNow, EndDate: fixedNow.Add(24 * time.Hour), TotalDays: 1,
		TotalAmount: amount, Status: status, CreatedAt: fixedNow,
	}
}

func TestBookings_ForUser(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeededStore(t)
	require.NoError(t, s.SetBookings(ctx, []models.Booking{
		booking("b1", "u1", "1", 100, models.BookingConfirmed),
		booking("b2", "u2", "2", 200, models.BookingConfirmed),
		booking("b3", "u1", "gone", 50, models.BookingCancelled),
	}))

	views, err := NewBookingService(s).ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "b1", views[0].ID)
	require.NotNil(t, views[0].Car)
	assert.Equal(t, "Tesla", views[0].Car.Brand)

	assert.Equal(t, "b3", views[1].ID)
	assert.Nil(t, views[1].Car, "a booking whose car is gone keeps a nil car")
}

func TestBookings_ForUserEmpty(t *testing.T) {
	s, _ := newSeededStore(t)
	views, err := NewBookingService(s).ForUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestBookings_Get(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeededStore(t)
	require.NoError(t, s.SetBookings(ctx, []models.Booking{booking("b1", "u1", "2", 100, models.BookingConfirmed)}))
	svc := NewBookingService(s)

	v, err := svc.Get(ctx, "u1", "b1")
	require.NoError(t, err)
	assert.Equal(t, "BMW X5", v.Car.Title())

	_, err = svc.Get(ctx, "u2", "b1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Get(ctx, "u1", "b404")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
