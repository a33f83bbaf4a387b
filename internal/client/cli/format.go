package cli

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrijs2005/carrental/internal/client/models"
)

const dateLayout = "2006-01-02"

var title = cases.Title(language.English)

// money formats an amount with thousands grouping, e.g. $1,234.50.
func (a *App) money(v float64) string {
	return a.printer.Sprintf("$%.2f", v)
}

func statusLabel(s models.BookingStatus) string {
	return title.String(string(s))
}

func availabilityLabel(available bool) string {
	if available {
		return "Available"
	}
	return "Booked"
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// parseDate reads a YYYY-MM-DD date as local midnight.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func formatDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}
