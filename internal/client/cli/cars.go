package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carrental/internal/client/models"
	"github.com/dmitrijs2005/carrental/internal/client/services"
)

// parseFilter reads key=value tokens: search, brand, price, avail.
// A bare token is taken as the search text.
func parseFilter(args []string) (services.Filter, error) {
	var f services.Filter
	var search []string
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok {
			search = append(search, arg)
			continue
		}
		switch key {
		case "search", "q":
			search = append(search, val)
		case "brand":
			f.Brand = val
		case "price":
			switch p := services.PriceRange(val); p {
			case services.PriceAll, services.PriceLow, services.PriceMedium, services.PriceHigh:
				f.Price = p
			default:
				return f, fmt.Errorf("price must be one of all, low, medium, high")
			}
		case "avail", "availability":
			switch v := services.Availability(val); v {
			case services.AvailabilityAll, services.AvailabilityAvailable, services.AvailabilityBooked:
				f.Availability = v
			default:
				return f, fmt.Errorf("avail must be one of all, available, booked")
			}
		default:
			return f, fmt.Errorf("unknown filter %q", key)
		}
	}
	f.Search = strings.Join(search, " ")
	return f, nil
}

// Cars lists the catalog, optionally filtered.
//
//	cars [text] [brand=BMW] [price=low|medium|high] [avail=available|booked]
func (a *App) Cars(ctx context.Context, args []string) error {
	f, err := parseFilter(args)
	if err != nil {
		a.printf("Error: %v\n", err)
		return err
	}

	cars, err := a.catalog.List(ctx, f)
	if err != nil {
		return a.report(ctx, err)
	}
	all, err := a.catalog.List(ctx, services.Filter{})
	if err != nil {
		return a.report(ctx, err)
	}

	for _, c := range cars {
		a.printCarLine(c)
	}
	a.printf("Showing %d of %d cars\n", len(cars), len(all))
	return nil
}

func (a *App) printCarLine(c models.Car) {
	a.printf("%-3s %-22s %d  %-8s %-9s %-8s %2d seats  %9s/day  %.1f (%d reviews)  %s\n",
		c.ID, c.Title(), c.Year, c.Category, c.Transmission, c.FuelType, c.Seats,
		a.money(c.PricePerDay), c.Rating, c.Reviews, availabilityLabel(c.Available))
}

// Car shows one car in detail.
func (a *App) Car(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: car <id>")
		return nil
	}
	c, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		return a.report(ctx, err)
	}

	a.printf("%s (%d)\n", c.Title(), c.Year)
	a.printf("  %s per day, %s\n", a.money(c.PricePerDay), availabilityLabel(c.Available))
	a.printf("  %s, %s, %s, %d seats\n", title.String(string(c.Category)), c.Transmission, c.FuelType, c.Seats)
	a.printf("  Rating %.1f from %d reviews\n", c.Rating, c.Reviews)
	if len(c.Features) > 0 {
		a.printf("  Features: %s\n", strings.Join(c.Features, ", "))
	}
	if c.Image != "" {
		a.printf("  Image: %s\n", c.Image)
	}
	return nil
}

func (a *App) Brands(ctx context.Context) error {
	brands, err := a.catalog.Brands(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	a.println(strings.Join(brands, ", "))
	return nil
}
