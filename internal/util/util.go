package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol = "€"
	dateLayout     = "02/01/2006"
)

// FormatCurrency renders an amount as €X.XX, rounding half away from zero at display time only.
func FormatCurrency(amount decimal.Decimal) string {
	return currencySymbol + amount.StringFixed(2)
}

// FormatAmount is FormatCurrency for stored float amounts.
func FormatAmount(amount float64) string {
	return FormatCurrency(decimal.NewFromFloat(amount))
}

// FormatDate renders t as dd/mm/yyyy in loc. A nil loc keeps t's own location.
func FormatDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}

	return t.Format(dateLayout)
}

// NormalizeCode trims and upper-cases an identifier such as an affiliate code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
