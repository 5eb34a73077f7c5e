package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{name: "zero", amount: decimal.Zero, expected: "€0.00"},
		{name: "whole euros", amount: decimal.NewFromInt(150), expected: "€150.00"},
		{name: "cents kept", amount: decimal.RequireFromString("49.9"), expected: "€49.90"},
		{name: "rounds half up at display", amount: decimal.RequireFromString("10.005"), expected: "€10.01"},
		{name: "exact sum of float prices", amount: decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2)), expected: "€0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCurrency(tt.amount); got != tt.expected {
				t.Fatalf("FormatCurrency(%s) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	if got := FormatAmount(12.5); got != "€12.50" {
		t.Fatalf("FormatAmount(12.5) = %s, want €12.50", got)
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	lisbon, err := time.LoadLocation("Europe/Lisbon")
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	tests := []struct {
		name     string
		t        time.Time
		loc      *time.Location
		expected string
	}{
		{name: "utc midday", t: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC), loc: time.UTC, expected: "05/03/2024"},
		{name: "late utc crosses midnight in summer Lisbon", t: time.Date(2024, 7, 31, 23, 30, 0, 0, time.UTC), loc: lisbon, expected: "01/08/2024"},
		{name: "nil location keeps own zone", t: time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC), loc: nil, expected: "31/12/2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDate(tt.t, tt.loc); got != tt.expected {
				t.Fatalf("FormatDate(%s) = %s, want %s", tt.t, got, tt.expected)
			}
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	if got := NormalizeCode("  rico10 "); got != "RICO10" {
		t.Fatalf("NormalizeCode = %s, want RICO10", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
