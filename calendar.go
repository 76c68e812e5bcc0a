package pocketplan

import (
	"slices"
	"strings"
)

// Category classifies the source of a calendar mark.
type Category uint8

const (
	CategoryRecurringIncome Category = 1 << iota
	CategoryRecurringExpense
	CategoryOneTimeIncome
	CategoryOneTimeExpense
)

func (c Category) String() string {
	switch c {
	case CategoryRecurringIncome:
		return "recurring-income"
	case CategoryRecurringExpense:
		return "recurring-expense"
	case CategoryOneTimeIncome:
		return "one-time-income"
	case CategoryOneTimeExpense:
		return "one-time-expense"
	default:
		return "unknown"
	}
}

// allCategories lists the categories in rendering order.
var allCategories = []Category{
	CategoryRecurringIncome,
	CategoryRecurringExpense,
	CategoryOneTimeIncome,
	CategoryOneTimeExpense,
}

// CategorySet is the set of categories marking a single calendar date.
type CategorySet uint8

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool { return uint8(s)&uint8(c) != 0 }

// With returns a copy of the set containing c.
func (s CategorySet) With(c Category) CategorySet { return s | CategorySet(c) }

// Categories returns the members of the set in rendering order.
func (s CategorySet) Categories() []Category {
	var out []Category
	for _, c := range allCategories {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	var parts []string
	for _, c := range s.Categories() {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ",")
}

// MarkingIndex maps each calendar date carrying at least one occurrence to
// the set of categories occurring on it. It is used purely to annotate a
// calendar view.
type MarkingIndex map[Date]CategorySet

// BuildMarkingIndex walks all items and collects, for every date inside
// window (inclusive on both ends), the categories occurring on it.
//
// Recurring items generate occurrences from their own start date, so an item
// starting after window.From still contributes from its start onward; the
// walk stops at the first occurrence past window.To. Building the index is
// pure: calling it repeatedly over changing collections is safe.
func BuildMarkingIndex(recurringIncome, recurringBills []RecurringItem, oneTimeIncome, oneTimeSpends []OneTimeItem, window Range) MarkingIndex {
	index := make(MarkingIndex)

	mark := func(d Date, c Category) {
		if window.Contains(d) {
			index[d] = index[d].With(c)
		}
	}
	markRecurring := func(items []RecurringItem, c Category) {
		for _, it := range items {
			if it.StartDate.IsZero() {
				continue
			}
			for d := range it.Occurrences() {
				if d.After(window.To) {
					break
				}
				mark(d, c)
			}
		}
	}

	markRecurring(recurringIncome, CategoryRecurringIncome)
	markRecurring(recurringBills, CategoryRecurringExpense)
	for _, it := range oneTimeIncome {
		mark(it.Date, CategoryOneTimeIncome)
	}
	for _, it := range oneTimeSpends {
		mark(it.Date, CategoryOneTimeExpense)
	}
	return index
}

// Dates returns the marked dates in chronological order.
func (m MarkingIndex) Dates() []Date {
	out := make([]Date, 0, len(m))
	for d := range m {
		out = append(out, d)
	}
	sortDates(out)
	return out
}

func sortDates(dates []Date) {
	slices.SortFunc(dates, func(a, b Date) int { return a.Time().Compare(b.Time()) })
}
