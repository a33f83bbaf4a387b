package cli

import (
	"context"
	"encoding/json"
)

func (a *App) Stats(ctx context.Context) error {
	st, err := a.admin.Stats(ctx, a.auth.CurrentUser())
	if err != nil {
		return a.report(ctx, err)
	}
	a.printf("Total cars:      %d\n", st.TotalCars)
	a.printf("Available cars:  %d\n", st.AvailableCars)
	a.printf("Total users:     %d\n", st.TotalUsers)
	a.printf("Active bookings: %d\n", st.ActiveBookings)
	a.printf("Total revenue:   %s\n", a.money(st.TotalRevenue))
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.admin.Users(ctx, a.auth.CurrentUser())
	if err != nil {
		return a.report(ctx, err)
	}
	for _, u := range users {
		role := "customer"
		if u.IsAdmin {
			role = "admin"
		}
		a.printf("%-36s  %-28s %-24s %-8s joined %s\n", u.ID, u.Email, u.FullName(), role, formatDate(u.CreatedAt))
	}
	return nil
}

func (a *App) AllBookings(ctx context.Context) error {
	views, err := a.admin.Bookings(ctx, a.auth.CurrentUser())
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

// SetAvailability marks a car as available or booked.
//
//	setavail <car-id> on|off
func (a *App) SetAvailability(ctx context.Context, args []string) error {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		a.println("Usage: setavail <car-id> on|off")
		return nil
	}
	available := args[1] == "on"
	if err := a.admin.SetCarAvailability(ctx, a.auth.CurrentUser(), args[0], available); err != nil {
		return a.report(ctx, err)
	}
	a.printf("Car %s is now %s\n", args[0], availabilityLabel(available))
	return nil
}

// Export prints every stored slot as one JSON document. Password hashes are
// included.
func (a *App) Export(ctx context.Context) error {
	if err := a.admin.Authorize(a.auth.CurrentUser()); err != nil {
		return a.report(ctx, err)
	}
	dump, err := a.store.Export(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	b, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return a.report(ctx, err)
	}
	a.println(string(b))
	return nil
}
