package pocketplan

import (
	"log"

	"github.com/shopspring/decimal"
)

// HasOccurrenceOn reports whether the item has an occurrence exactly on the
// query date. The walk stops at the first occurrence past the query, so it
// terminates whether or not the query date is reachable.
func (it RecurringItem) HasOccurrenceOn(query Date) bool {
	if query.Before(it.StartDate) {
		return false
	}
	for d := range it.Occurrences() {
		if d.After(query) {
			return false
		}
		if d == query {
			return true
		}
	}
	return false
}

// ProjectBalance computes the balance as of target.
//
// Starting from the anchor's initial balance, every occurrence of a
// recurring item falling inside [anchor.TrackingStart, target] applies the
// item's amount (income adds, expenses subtract), and every one-time item
// dated inside the same window applies once. An item whose own start date
// precedes the tracking start still contributes its occurrences landing on
// or after it.
//
// If target is before the tracking start the result is the initial balance:
// no occurrence can satisfy the window.
//
// Items with an unusable date are skipped with a logged warning rather than
// failing the whole projection.
func ProjectBalance(anchor Anchor, recurringIncome, recurringBills []RecurringItem, oneTimeIncome, oneTimeSpends []OneTimeItem, target Date) decimal.Decimal {
	balance := anchor.InitialBalance
	if target.Before(anchor.TrackingStart) {
		return balance
	}
	window := Range{From: anchor.TrackingStart, To: target}

	for _, it := range recurringIncome {
		balance = balance.Add(recurringContribution(it, window))
	}
	for _, it := range recurringBills {
		balance = balance.Sub(recurringContribution(it, window))
	}
	for _, it := range oneTimeIncome {
		balance = balance.Add(oneTimeContribution(it, window))
	}
	for _, it := range oneTimeSpends {
		balance = balance.Sub(oneTimeContribution(it, window))
	}
	return balance
}

// recurringContribution sums the item's amount over its occurrences inside
// the window. The walk stops at the first occurrence past the window end.
func recurringContribution(it RecurringItem, window Range) decimal.Decimal {
	if it.StartDate.IsZero() {
		log.Printf("warning: recurring item %q has no usable start date, skipping", it.Name)
		return decimal.Zero
	}
	total := decimal.Zero
	for d := range it.Occurrences() {
		if d.After(window.To) {
			break
		}
		if window.Contains(d) {
			total = total.Add(it.Amount)
		}
	}
	return total
}

func oneTimeContribution(it OneTimeItem, window Range) decimal.Decimal {
	if it.Date.IsZero() {
		log.Printf("warning: one-time item %q has no usable date, skipping", it.Name)
		return decimal.Zero
	}
	if window.Contains(it.Date) {
		return it.Amount
	}
	return decimal.Zero
}
