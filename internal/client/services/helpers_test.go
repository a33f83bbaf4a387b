package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carrental/internal/client/kv"
	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/client/notify"
	"github.com/dmitrijs2005/carrental/internal/client/store"
	"github.com/dmitrijs2005/carrental/internal/cryptox"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

var testHasher = cryptox.NewArgon2Hasher(cryptox.Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16})

func testLogger() logging.Logger { return logging.Discard() }

// recorder is a goroutine-safe notify.Notifier that keeps every notice.
type recorder struct {
	mu      sync.Mutex
	notices []notice
}

type notice struct {
	Kind    notify.Kind
	Message string
}

func (r *recorder) Notify(kind notify.Kind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{kind, message})
}

func (r *recorder) all() []notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notice(nil), r.notices...)
}

func (r *recorder) last() notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return notice{}
	}
	return r.notices[len(r.notices)-1]
}

func (r *recorder) has(kind notify.Kind, message string) bool {
	for _, n := range r.all() {
		if n.Kind == kind && n.Message == message {
			return true
		}
	}
	return false
}

// newSeededStore returns a record store over memory with the default data.
func newSeededStore(t *testing.T) (*store.Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	s := store.New(mem, testLogger())
	require.NoError(t, s.InitializeData(context.Background(), testHasher))
	return s, mem
}

// failingStore wraps a RecordStore and fails the configured writes.
type failingStore struct {
	RecordStore
	setSessionErr error
	setUsersErr   error
	addBookingErr error
}

var errDisk = errors.New("disk full")

func (f *failingStore) SetCurrentUser(ctx context.Context, u *models.User) error {
	if f.setSessionErr != nil {
		return f.setSessionErr
	}
	return f.RecordStore.SetCurrentUser(ctx, u)
}

func (f *failingStore) SetUsers(ctx context.Context, users []models.User) error {
	if f.setUsersErr != nil {
		return f.setUsersErr
	}
	return f.RecordStore.SetUsers(ctx, users)
}

func (f *failingStore) AddBooking(ctx context.Context, b models.Booking) error {
	if f.addBookingErr != nil {
		return f.addBookingErr
	}
	return f.RecordStore.AddBooking(ctx, b)
}
