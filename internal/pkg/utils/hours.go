package utils

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoundHours rounds a fractional hour value to two decimals, half away from zero.
func RoundHours(hours float64) float64 {
	return decimal.NewFromFloat(hours).Round(2).InexactFloat64()
}

// HoursBetween returns the elapsed hours from start to end, unrounded.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
