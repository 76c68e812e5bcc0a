package pocketplan

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency has been selected yet.
const DefaultCurrency = "USD"

// ValidateCurrency checks that code names a known ISO-like currency.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// FormatAmount renders an amount for display in the given currency, rounding
// to the currency's minor unit. Rounding happens here and only here: balance
// accumulation stays exact to prevent drift across many occurrences.
func FormatAmount(amount decimal.Decimal, code string) string {
	// The money constructor never returns a nil currency, even for an
	// unknown code.
	cur := *money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// CurrencyInfo describes one selectable display currency.
type CurrencyInfo struct {
	Code   string
	Symbol string
	Name   string
}

// Currencies returns the curated list of display currencies offered to the
// user. Any code go-money knows is accepted by ValidateCurrency; this list
// only drives the picker shown by 'set'.
func Currencies() []CurrencyInfo {
	codes := []struct{ code, name string }{
		{"USD", "US Dollar"},
		{"EUR", "Euro"},
		{"GBP", "British Pound"},
		{"JPY", "Japanese Yen"},
		{"CAD", "Canadian Dollar"},
		{"AUD", "Australian Dollar"},
		{"CHF", "Swiss Franc"},
		{"CNY", "Chinese Yuan"},
		{"INR", "Indian Rupee"},
		{"KES", "Kenyan Shilling"},
		{"NGN", "Nigerian Naira"},
		{"UGX", "Ugandan Shilling"},
		{"ZAR", "South African Rand"},
	}
	infos := make([]CurrencyInfo, 0, len(codes))
	for _, c := range codes {
		infos = append(infos, CurrencyInfo{Code: c.code, Symbol: money.GetCurrency(c.code).Grapheme, Name: c.name})
	}
	return infos
}

// ParseAmount parses a user-supplied decimal amount and enforces the item
// invariant that amounts are strictly positive. Direction is encoded by the
// collection an item belongs to, never by a sign.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %q", s)
	}
	return d, nil
}
