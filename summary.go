package pocketplan

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// MonthSummary is an at-a-glance overview of a single calendar month:
// everything flowing in, everything flowing out, and where the spending went.
type MonthSummary struct {
	Month    Date // first day of the month
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	// Breakdown aggregates expense totals by item name, largest first.
	Breakdown []BreakdownEntry
}

// BreakdownEntry is one named slice of the month's spending.
type BreakdownEntry struct {
	Name   string
	Amount decimal.Decimal
}

// NewMonthSummary computes the summary for the calendar month containing on.
// Recurring items count each occurrence landing inside the month, so a
// weekly bill weighs four or five times its amount while a yearly one
// usually weighs nothing.
func NewMonthSummary(recurringIncome, recurringBills []RecurringItem, oneTimeIncome, oneTimeSpends []OneTimeItem, on Date) *MonthSummary {
	window := Range{From: on.StartOfMonth(), To: on.EndOfMonth()}

	s := &MonthSummary{Month: window.From}
	byName := make(map[string]decimal.Decimal)

	for _, it := range recurringIncome {
		s.Income = s.Income.Add(recurringContribution(it, window))
	}
	for _, it := range oneTimeIncome {
		s.Income = s.Income.Add(oneTimeContribution(it, window))
	}
	for _, it := range recurringBills {
		amount := recurringContribution(it, window)
		if amount.IsZero() {
			continue
		}
		s.Expenses = s.Expenses.Add(amount)
		byName[it.Name] = byName[it.Name].Add(amount)
	}
	for _, it := range oneTimeSpends {
		amount := oneTimeContribution(it, window)
		if amount.IsZero() {
			continue
		}
		s.Expenses = s.Expenses.Add(amount)
		byName[it.Name] = byName[it.Name].Add(amount)
	}

	s.Net = s.Income.Sub(s.Expenses)
	for name, amount := range byName {
		s.Breakdown = append(s.Breakdown, BreakdownEntry{Name: name, Amount: amount})
	}
	slices.SortFunc(s.Breakdown, func(a, b BreakdownEntry) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	return s
}
