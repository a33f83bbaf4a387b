package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrijs2005/carrental/internal/client/config"
	"github.com/dmitrijs2005/carrental/internal/client/kv"
	"github.com/dmitrijs2005/carrental/internal/client/notify"
	"github.com/dmitrijs2005/carrental/internal/client/services"
	"github.com/dmitrijs2005/carrental/internal/client/store"
	"github.com/dmitrijs2005/carrental/internal/cryptox"
	"github.com/dmitrijs2005/carrental/internal/filex"
	"github.com/dmitrijs2005/carrental/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	kv       kv.Store
	store    *store.Store
	hasher   cryptox.PasswordHasher
	auth     services.AuthService
	catalog  services.CatalogService
	checkout services.CheckoutService
	bookings services.BookingService
	admin    services.AdminService

	reader  *bufio.Reader
	out     io.Writer
	printer *message.Printer
}

type Option func(*App)

// WithHasher replaces the default argon2id password hasher.
func WithHasher(h cryptox.PasswordHasher) Option {
	return func(a *App) { a.hasher = h }
}

// NewApp opens storage, seeds it when configured and builds the services.
// The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer, opts ...Option) (*App, error) {
	a := &App{
		config:  c,
		log:     log,
		hasher:  cryptox.NewArgon2Hasher(cryptox.DefaultArgon2Params),
		reader:  bufio.NewReader(in),
		out:     out,
		printer: message.NewPrinter(language.English),
	}
	for _, o := range opts {
		o(a)
	}

	dir := c.DataDir
	if c.StorageDriver != kv.DriverMemory {
		var err error
		if dir, err = filex.EnsureDir(c.DataDir); err != nil {
			return nil, err
		}
	}

	s, err := kv.Open(ctx, c.StorageDriver, dir, c.StorageFile())
	if err != nil {
		log.Error(ctx, "error opening storage", "driver", c.StorageDriver, "error", err)
		return nil, err
	}
	a.kv = s
	a.store = store.New(s, log)

	if c.Seed {
		if err := a.store.InitializeData(ctx, a.hasher); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("seed data: %w", err)
		}
	}

	notifier := notify.Multi{notify.NewWriterNotifier(out), notify.NewLogNotifier(log)}
	a.auth = services.NewAuthService(a.store, a.hasher, notifier, log, c.IdleTimeout)
	a.catalog = services.NewCatalogService(a.store)
	a.checkout = services.NewCheckoutService(a.store, notifier, log, c.TaxRate)
	a.bookings = services.NewBookingService(a.store)
	a.admin = services.NewAdminService(a.store, log)

	return a, nil
}

// Run restores the session and serves the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.auth.Start(ctx); err != nil {
		return err
	}
	a.println("Welcome to Car Rental (type 'help' for commands)")
	if u := a.auth.CurrentUser(); u != nil {
		a.printf("Signed in as %s\n", u.Email)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close stops the idle timer and releases storage.
func (a *App) Close() error {
	_ = a.auth.Close()
	return a.kv.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	u := a.auth.CurrentUser()
	return u != nil && u.IsAdmin
}

func (a *App) touch() {
	a.auth.Touch(services.SignalKeyPress)
}

func (a *App) getStatus() string {
	u := a.auth.CurrentUser()
	if u == nil {
		return ""
	}
	if u.IsAdmin {
		return fmt.Sprintf("(%s admin)", u.Email)
	}
	return fmt.Sprintf("(%s)", u.Email)
}

func (a *App) println(args ...any) {
	_, _ = fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
