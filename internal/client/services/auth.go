package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrijs2005/carrental/internal/client/idle"
	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/client/notify"
	"github.com/dmitrijs2005/carrental/internal/client/policy"
	"github.com/dmitrijs2005/carrental/internal/common"
	"github.com/dmitrijs2005/carrental/internal/cryptox"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

const DefaultIdleTimeout = 5 * time.Minute

const (
	MsgInvalidEmail       = "Please enter a valid email address"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailTaken         = "An account with this email already exists"
	MsgLoggedOut          = "You have been logged out successfully"
	MsgIdleLoggedOut      = "You have been logged out due to inactivity"
)

// Signal is a user interaction that counts as activity.
type Signal string

const (
	SignalMouseDown  Signal = "mousedown"
	SignalMouseMove  Signal = "mousemove"
	SignalKeyPress   Signal = "keypress"
	SignalScroll     Signal = "scroll"
	SignalTouchStart Signal = "touchstart"
)

var activitySignals = map[Signal]struct{}{
	SignalMouseDown:  {},
	SignalMouseMove:  {},
	SignalKeyPress:   {},
	SignalScroll:     {},
	SignalTouchStart: {},
}

// RegisterRequest carries the profile submitted at sign-up.
type RegisterRequest struct {
	Email     string
	Password  []byte
	FirstName string
	LastName  string
	Phone     string
}

// AuthService owns the current session.
//
// Contract:
//   - Start: restore the session slot; arm the idle timer when a user is present.
//   - Login: validate the email, verify credentials, persist the session.
//   - Register: validate, reject duplicate emails, append the user, persist the session.
//   - Logout: always ends the session; safe when nobody is signed in.
//   - Touch: restart the idle countdown on user activity.
//   - Close: stop the idle timer.
//
// Every transition into the signed-in state re-arms the idle timer. When the
// timer expires the session ends as with Logout, but with a distinct notice.
type AuthService interface {
	Start(ctx context.Context) error
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	Touch(sig Signal) bool
	CurrentUser() *models.User
	IsAuthenticated() bool
	Close() error
}

type authService struct {
	store    RecordStore
	hasher   cryptox.PasswordHasher
	notifier notify.Notifier
	log      logging.Logger

	decoyOnce sync.Once
	decoy     string

	mu   sync.Mutex
	user *models.User
	idle *idle.Timer
	now  func() time.Time
}

// NewAuthService builds an AuthService. A non-positive idleTimeout selects
// DefaultIdleTimeout.
func NewAuthService(store RecordStore, hasher cryptox.PasswordHasher, notifier notify.Notifier,
	log logging.Logger, idleTimeout time.Duration) AuthService {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	a := &authService{
		store:    store,
		hasher:   hasher,
		notifier: notifier,
		log:      log.With("component", "auth"),
		now:      time.Now,
	}
	a.idle = idle.New(idleTimeout, a.expire)
	return a
}

func (a *authService) Start(ctx context.Context) error {
	u, err := a.store.GetCurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
	if u != nil {
		a.idle.Arm()
		a.log.Info(ctx, "session restored", "user_id", u.ID)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	email = policy.NormalizeEmail(email)
	if !policy.IsValidEmail(email) {
		return nil, a.fail(common.ErrValidation, MsgInvalidEmail)
	}

	users, err := a.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var found *models.User
	for i := range users {
		if policy.NormalizeEmail(users[i].Email) == email {
			found = &users[i]
			break
		}
	}
	// Unknown emails pay for a verify too, so timing does not reveal accounts.
	var stored string
	if found != nil {
		stored = found.Password
	} else {
		stored = a.decoyHash()
	}
	if !a.hasher.Verify(password, stored) || found == nil {
		a.log.Info(ctx, "login rejected", "email", email)
		return nil, a.fail(common.ErrInvalidCredentials, MsgInvalidCredentials)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.signIn(ctx, found); err != nil {
		return nil, err
	}
	a.notifier.Notify(notify.Success, fmt.Sprintf("Welcome back, %s!", found.FirstName))
	return cloneUser(found), nil
}

func (a *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	email := policy.NormalizeEmail(req.Email)
	if !policy.IsValidEmail(email) {
		return nil, a.fail(common.ErrValidation, MsgInvalidEmail)
	}
	if res := policy.CheckPassword(string(req.Password)); !res.OK {
		return nil, a.fail(common.ErrValidation, res.First())
	}

	users, err := a.store.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		if policy.NormalizeEmail(u.Email) == email {
			return nil, a.fail(common.ErrConflict, MsgEmailTaken)
		}
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     normalizePhone(req.Phone),
		IsAdmin:   false,
		CreatedAt: a.now().UTC(),
	}

	// The users write and the session write are separate slot writes.
	if err := a.store.SetUsers(ctx, append(users, u)); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}
	a.log.Info(ctx, "user registered", "user_id", u.ID)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.signIn(ctx, &u); err != nil {
		return nil, err
	}
	a.notifier.Notify(notify.Success, fmt.Sprintf("Account created successfully! Welcome, %s!", u.FirstName))
	return cloneUser(&u), nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.signOut(ctx); err != nil {
		return err
	}
	a.notifier.Notify(notify.Success, MsgLoggedOut)
	return nil
}

func (a *authService) Touch(sig Signal) bool {
	if _, ok := activitySignals[sig]; !ok {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return false
	}
	return a.idle.Reset()
}

func (a *authService) CurrentUser() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return cloneUser(a.user)
}

func (a *authService) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil
}

func (a *authService) Close() error {
	a.idle.Disarm()
	return nil
}

// expire runs on the timer goroutine.
func (a *authService) expire() {
	ctx := context.Background()

	a.mu.Lock()
	defer a.mu.Unlock()
	// A sign-in between the timer firing and acquiring the lock re-armed it.
	if a.user == nil || a.idle.Armed() {
		return
	}
	if err := a.signOut(ctx); err != nil {
		a.log.Error(ctx, "idle logout failed", "error", err)
		return
	}
	a.log.Info(ctx, "session expired", "timeout", a.idle.Timeout())
	a.notifier.Notify(notify.Info, MsgIdleLoggedOut)
}

// signIn and signOut must be called with a.mu held.
func (a *authService) signIn(ctx context.Context, u *models.User) error {
	if err := a.store.SetCurrentUser(ctx, u); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	a.user = cloneUser(u)
	a.idle.Arm()
	a.log.Info(ctx, "signed in", "user_id", u.ID)
	return nil
}

func (a *authService) signOut(ctx context.Context) error {
	prev := a.user
	a.user = nil
	a.idle.Disarm()
	if err := a.store.SetCurrentUser(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if prev != nil {
		a.log.Info(ctx, "signed out", "user_id", prev.ID)
	}
	return nil
}

// decoyHash is a hash of random bytes that no password matches.
func (a *authService) decoyHash() string {
	a.decoyOnce.Do(func() {
		h, err := a.hasher.Hash(common.GenerateRandByteArray(16))
		if err != nil {
			a.log.Warn(context.Background(), "decoy hash failed", "error", err)
			return
		}
		a.decoy = h
	})
	return a.decoy
}

func (a *authService) fail(kind error, msg string) error {
	a.notifier.Notify(notify.Error, msg)
	return common.NewError(kind, msg)
}

func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

func cloneUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
