package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// All monetary values in this codebase are decimals quantized to two places.
// Never convert through float64.

func Zero() decimal.Decimal {
	return decimal.New(0, -2)
}

// Currency quantizes a decimal to two places, rounding half up.
func Currency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseCurrency converts a raw export cell to a two-place decimal. Blank or
// unparseable cells become 0.00 so that a single malformed cell never aborts
// a batch.
func ParseCurrency(value string) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Zero()
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Zero()
	}

	return Currency(d)
}
