package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests provide a recording stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	touch()

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Cars(ctx context.Context, args []string) error
	Car(ctx context.Context, args []string) error
	Brands(ctx context.Context) error
	Quote(ctx context.Context, args []string) error
	Book(ctx context.Context, args []string) error
	Bookings(ctx context.Context) error
	Booking(ctx context.Context, args []string) error

	Stats(ctx context.Context) error
	Users(ctx context.Context) error
	AllBookings(ctx context.Context) error
	SetAvailability(ctx context.Context, args []string) error
	Export(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: cars, car, brands, quote, register, login, exit"
	helpCustomer  = "Available commands: cars, car, brands, quote, book, bookings, booking, whoami, logout, exit"
	helpAdmin     = "Admin commands: stats, users, allbookings, setavail, export"
)

// runREPL reads commands line by line from r and dispatches them to a. The
// first token is the command, the rest are its arguments. Every command,
// known or not, counts as activity. The loop ends on EOF, "exit" or "quit".
//
// Handler errors are not printed here: handlers report their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("rent%s> ", prefixSpace(statusFn())))
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		a.touch()

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpCustomer)
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpCustomer)
			default:
				printlnFn(helpAnonymous)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.Whoami(ctx)

		case "cars", "l":
			_ = a.Cars(ctx, args)
		case "car":
			_ = a.Car(ctx, args)
		case "brands":
			_ = a.Brands(ctx)
		case "quote":
			_ = a.Quote(ctx, args)
		case "book":
			_ = a.Book(ctx, args)
		case "bookings":
			_ = a.Bookings(ctx)
		case "booking":
			_ = a.Booking(ctx, args)

		case "stats", "users", "allbookings", "setavail", "export":
			if !a.isAdmin() {
				printlnFn("Administrator access required")
				continue
			}
			switch cmd {
			case "stats":
				_ = a.Stats(ctx)
			case "users":
				_ = a.Users(ctx)
			case "allbookings":
				_ = a.AllBookings(ctx)
			case "setavail":
				_ = a.SetAvailability(ctx, args)
			case "export":
				_ = a.Export(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
