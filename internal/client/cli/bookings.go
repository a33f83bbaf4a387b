package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/client/services"
)

var errUsage = errors.New("usage")

// rentalArgs parses "<car-id> <pickup YYYY-MM-DD> <return YYYY-MM-DD>".
func (a *App) rentalArgs(cmd string, args []string) (string, time.Time, time.Time, error) {
	if len(args) != 3 {
		a.printf("Usage: %s <car-id> <pickup YYYY-MM-DD> <return YYYY-MM-DD>\n", cmd)
		return "", time.Time{}, time.Time{}, errUsage
	}
	start, err := parseDate(args[1])
	if err != nil {
		a.printf("Error: invalid pickup date %q\n", args[1])
		return "", time.Time{}, time.Time{}, err
	}
	end, err := parseDate(args[2])
	if err != nil {
		a.printf("Error: invalid return date %q\n", args[2])
		return "", time.Time{}, time.Time{}, err
	}
	return args[0], start, end, nil
}

// Quote prints the price breakdown without booking.
func (a *App) Quote(ctx context.Context, args []string) error {
	carID, start, end, err := a.rentalArgs("quote", args)
	if err != nil {
		return err
	}
	c, err := a.catalog.Get(ctx, carID)
	if err != nil {
		return a.report(ctx, err)
	}
	a.printQuote(*c, a.checkout.Quote(*c, start, end))
	return nil
}

func (a *App) printQuote(c models.Car, q services.Quote) {
	a.printf("%s: %s x %s\n", c.Title(), a.money(c.PricePerDay), dayCount(q.Days))
	a.printf("  Subtotal %s\n", a.money(q.Subtotal))
	a.printf("  Tax (%.0f%%) %s\n", a.config.TaxRate*100, a.money(q.Tax))
	a.printf("  Total    %s\n", a.money(q.Total))
}

// Book books a car for the signed-in user.
func (a *App) Book(ctx context.Context, args []string) error {
	carID, start, end, err := a.rentalArgs("book", args)
	if err != nil {
		return err
	}
	b, err := a.checkout.Book(ctx, a.auth.CurrentUser(), carID, start, end)
	if err != nil {
		return a.reportUnannounced(ctx, err)
	}
	a.printf("Booking %s, transaction %s, total %s\n", b.ID, b.TransactionID, a.money(b.TotalAmount))
	return nil
}

// Bookings lists the signed-in user's bookings.
func (a *App) Bookings(ctx context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		a.println("Please log in to view your bookings")
		return nil
	}
	views, err := a.bookings.ForUser(ctx, u.ID)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(views) == 0 {
		a.println("No bookings yet")
		return nil
	}
	for _, v := range views {
		a.printBookingLine(v)
	}
	return nil
}

func (a *App) Booking(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: booking <id>")
		return nil
	}
	u := a.auth.CurrentUser()
	if u == nil {
		a.println("Please log in to view your bookings")
		return nil
	}
	v, err := a.bookings.Get(ctx, u.ID, args[0])
	if err != nil {
		return a.report(ctx, err)
	}

	a.printf("Booking %s (%s)\n", v.ID, statusLabel(v.Status))
	a.printf("  Car:         %s\n", carTitle(v.Car))
	a.printf("  Dates:       %s to %s, %s\n", formatDate(v.StartDate), formatDate(v.EndDate), dayCount(v.TotalDays))
	a.printf("  Subtotal:    %s\n", a.money(v.TotalPrice))
	a.printf("  Tax:         %s\n", a.money(v.Tax))
	a.printf("  Total:       %s\n", a.money(v.TotalAmount))
	a.printf("  Transaction: %s\n", v.TransactionID)
	a.printf("  Booked on:   %s\n", formatDate(v.CreatedAt))
	return nil
}

func (a *App) printBookingLine(v services.BookingView) {
	a.printf("%s  %-22s %s to %s  %10s  %s\n",
		v.ID, carTitle(v.Car), formatDate(v.StartDate), formatDate(v.EndDate),
		a.money(v.TotalAmount), statusLabel(v.Status))
}

func carTitle(c *models.Car) string {
	if c == nil {
		return "(car removed)"
	}
	return c.Title()
}
