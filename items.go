package pocketplan

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringItem is a cash-flow event repeating at a fixed interval, starting
// at StartDate. Whether it adds or subtracts is decided by the collection it
// belongs to (recurring income vs recurring bills); Amount is always positive.
type RecurringItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	StartDate Date            `json:"startDate"`
	Interval  Interval        `json:"interval"`
}

// NewRecurringItem creates a recurring item with a fresh id.
func NewRecurringItem(name string, amount decimal.Decimal, start Date, iv Interval) RecurringItem {
	return RecurringItem{
		ID:        uuid.NewString(),
		Name:      name,
		Amount:    amount,
		StartDate: start,
		Interval:  iv,
	}
}

// Validate checks the item invariants: a display name, a strictly positive
// amount, and a usable start date.
func (it RecurringItem) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("recurring item %q has no name", it.ID)
	}
	if !it.Amount.IsPositive() {
		return fmt.Errorf("recurring item %q amount must be positive, got %s", it.Name, it.Amount)
	}
	if it.StartDate.IsZero() {
		return fmt.Errorf("recurring item %q has no start date", it.Name)
	}
	return nil
}

// Occurrences returns the item's occurrence sequence from its own start date.
func (it RecurringItem) Occurrences() iter.Seq[Date] {
	return Occurrences(it.StartDate, it.Interval)
}

// OneTimeItem is a cash-flow event applying exactly once, on Date. It is the
// degenerate recurring item with a single occurrence.
type OneTimeItem struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
}

// NewOneTimeItem creates a one-time item with a fresh id.
func NewOneTimeItem(name string, amount decimal.Decimal, on Date) OneTimeItem {
	return OneTimeItem{
		ID:     uuid.NewString(),
		Name:   name,
		Amount: amount,
		Date:   on,
	}
}

// Validate checks the item invariants.
func (it OneTimeItem) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("one-time item %q has no name", it.ID)
	}
	if !it.Amount.IsPositive() {
		return fmt.Errorf("one-time item %q amount must be positive, got %s", it.Name, it.Amount)
	}
	if it.Date.IsZero() {
		return fmt.Errorf("one-time item %q has no date", it.Name)
	}
	return nil
}

// Anchor fixes the balance from which projections are measured: the balance
// was InitialBalance on TrackingStart, and occurrences before TrackingStart
// are excluded from every projection even when their item started earlier.
type Anchor struct {
	InitialBalance decimal.Decimal
	TrackingStart  Date
}
