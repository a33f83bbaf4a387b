package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carrental/internal/client/kv"
	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/common"
	"github.com/dmitrijs2005/carrental/internal/cryptox"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

type plainHasher struct{}

func (plainHasher) Hash(p []byte) (string, error) { return "plain$" + string(p), nil }

func (plainHasher) Verify(p []byte, encoded string) bool { return encoded == "plain$"+string(p) }

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	return New(mem, logging.Discard()), mem
}

func sampleBooking(id string) models.Booking {
	start := time.Date(2030, 1, 10, 10, 0, 0, 0, time.UTC)
	return models.Booking{
		ID: id, UserID: "u1", CarID: "1", StartDate: start, EndDate: start.Add(48 * time.Hour),
		TotalDays: 2, TotalPrice: 178, Tax: 17.8, TotalAmount: 195.8,
		Status: models.BookingConfirmed, TransactionID: "TXNABC", CreatedAt: start,
	}
}

func TestStore_EmptySlots(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	cars, err := s.GetCars(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cars)
	assert.Empty(t, cars)

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	bookings, err := s.GetBookings(ctx)
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)

	u, err := s.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_CarsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	want := SeedCars()[:3]
	require.NoError(t, s.SetCars(ctx, want))

	got, err := s.GetCars(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cars mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SetNilCollectionStoresEmptyList(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)

	require.NoError(t, s.SetUsers(ctx, nil))

	raw, err := mem.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestStore_AddBookingAppends(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.AddBooking(ctx, sampleBooking("b1")))
	require.NoError(t, s.AddBooking(ctx, sampleBooking("b2")))

	got, err := s.GetBookings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "b2", got[1].ID)
	assert.True(t, got[0].StartDate.Equal(sampleBooking("b1").StartDate))
}

func TestStore_CurrentUser(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)

	u := &models.User{ID: "u1", Email: "jo@example.com", Password: "h", FirstName: "Jo", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.SetCurrentUser(ctx, u))

	got, err := s.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)

	require.NoError(t, s.SetCurrentUser(ctx, nil))
	raw, err := mem.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, raw, "nil user must remove the slot")

	got, err = s.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CorruptedCollection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
		raw  string
		get  func(s *Store) error
	}{
		{
			name: "malformed cars",
			key:  KeyCars,
			raw:  `[{"id":`,
			get:  func(s *Store) error { _, err := s.GetCars(ctx); return err },
		},
		{
			name: "invalid user record",
			key:  KeyUsers,
			raw:  `[{"id":"u1","email":"nope","password":"x","createdAt":"2024-01-01T00:00:00Z"}]`,
			get:  func(s *Store) error { _, err := s.GetUsers(ctx); return err },
		},
		{
			name: "bookings not a list",
			key:  KeyBookings,
			raw:  `{"id":"b1"}`,
			get:  func(s *Store) error { _, err := s.GetBookings(ctx); return err },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := newTestStore(t)
			require.NoError(t, mem.Set(ctx, tt.key, []byte(tt.raw)))

			err := tt.get(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrStorageCorrupted)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestStore_CorruptedSessionFailsClosed(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)
	require.NoError(t, mem.Set(ctx, KeyCurrentUser, []byte(`{"id":42}`)))

	u, err := s.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	raw, err := mem.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestStore_InitializeDataSeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.InitializeData(ctx, plainHasher{}))

	cars, err := s.GetCars(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(SeedCars(), cars); diff != "" {
		t.Errorf("seeded cars mismatch (-want +got):\n%s", diff)
	}

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	admin := users[0]
	assert.Equal(t, AdminID, admin.ID)
	assert.Equal(t, AdminEmail, admin.Email)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "Admin", admin.FirstName)
	assert.Equal(t, "User", admin.LastName)
	assert.Equal(t, "+1234567890", admin.Phone)
	assert.NotEqual(t, AdminPassword, admin.Password)
	assert.True(t, plainHasher{}.Verify([]byte(AdminPassword), admin.Password))

	bookings, err := s.GetBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, bookings)

	u, err := s.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestStore_InitializeDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)

	require.NoError(t, s.InitializeData(ctx, plainHasher{}))
	first, err := mem.List(ctx)
	require.NoError(t, err)

	require.NoError(t, s.InitializeData(ctx, plainHasher{}))
	second, err := mem.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_InitializeDataChecksKeysIndependently(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	existing := []models.User{{ID: "u1", Email: "jo@example.com", Password: "h", CreatedAt: time.Now().UTC()}}
	require.NoError(t, s.SetUsers(ctx, existing))
	require.NoError(t, s.SetBookings(ctx, []models.Booking{sampleBooking("b1")}))

	require.NoError(t, s.InitializeData(ctx, plainHasher{}))

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID, "existing users must not be replaced by the admin seed")

	bookings, err := s.GetBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	cars, err := s.GetCars(ctx)
	require.NoError(t, err)
	assert.Len(t, cars, 10)
}

func TestStore_InitializeDataWithArgon2(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	h := cryptox.NewArgon2Hasher(cryptox.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})

	require.NoError(t, s.InitializeData(ctx, h))

	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, h.Verify([]byte(AdminPassword), users[0].Password))
	assert.False(t, h.Verify([]byte("admin124"), users[0].Password))
}

func TestStore_ExportAndReset(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestStore(t)
	require.NoError(t, s.InitializeData(ctx, plainHasher{}))
	require.NoError(t, mem.Set(ctx, "unrelated", []byte("x")))

	dump, err := s.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, dump, 3)
	assert.Contains(t, dump, KeyCars)
	assert.Contains(t, dump, KeyUsers)
	assert.NotContains(t, dump, "unrelated")
	assert.JSONEq(t, "[]", string(dump[KeyBookings]))

	require.NoError(t, s.Reset(ctx))
	all, err := mem.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
