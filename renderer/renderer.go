// Package renderer builds the markdown reports displayed by the CLI.
package renderer

import (
	"fmt"
	"strings"

	"github.com/ssekandi/pocketplan"
)

// BalanceMarkdown renders a balance projection report.
func BalanceMarkdown(on pocketplan.Date, formatted string, anchor pocketplan.Anchor, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Balance on %s\n\n", on)
	fmt.Fprintf(&b, "**%s**\n\n", formatted)
	fmt.Fprintf(&b, "Projected from %s on %s.\n",
		pocketplan.FormatAmount(anchor.InitialBalance, currency), anchor.TrackingStart)
	return b.String()
}

// markers maps each category to its calendar dot, in the original UI's
// color order: income green, bills red, one-time blue.
var markers = map[pocketplan.Category]string{
	pocketplan.CategoryRecurringIncome:  "🟢",
	pocketplan.CategoryRecurringExpense: "🔴",
	pocketplan.CategoryOneTimeIncome:    "🔵",
	pocketplan.CategoryOneTimeExpense:   "🔵",
}

// CalendarMarkdown renders the marked dates of a range as a table, one row
// per date carrying at least one occurrence. Walking the window day by day
// keeps rows in calendar order and drops markings outside the window.
func CalendarMarkdown(window pocketplan.Range, index pocketplan.MarkingIndex) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Calendar %s .. %s\n\n", window.From, window.To)
	if len(index) == 0 {
		b.WriteString("No occurrences in range.\n")
		return b.String()
	}
	b.WriteString("| Date | | Events |\n")
	b.WriteString("|---|---|---|\n")
	for d := range window.Days() {
		set, ok := index[d]
		if !ok {
			continue
		}
		var dots strings.Builder
		for _, c := range set.Categories() {
			dots.WriteString(markers[c])
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", d, dots.String(), set)
	}
	return b.String()
}

// SummaryMarkdown renders a month summary with its expense breakdown.
func SummaryMarkdown(s *pocketplan.MonthSummary, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary for %s\n\n", s.Month.Format("January 2006"))
	fmt.Fprintf(&b, "- Income: **%s**\n", pocketplan.FormatAmount(s.Income, currency))
	fmt.Fprintf(&b, "- Expenses: **%s**\n", pocketplan.FormatAmount(s.Expenses, currency))
	fmt.Fprintf(&b, "- Net: **%s**\n", pocketplan.FormatAmount(s.Net, currency))
	if len(s.Breakdown) > 0 {
		b.WriteString("\n## Expense breakdown\n\n")
		b.WriteString("| Name | Amount |\n")
		b.WriteString("|---|---|\n")
		for _, e := range s.Breakdown {
			fmt.Fprintf(&b, "| %s | %s |\n", e.Name, pocketplan.FormatAmount(e.Amount, currency))
		}
	}
	return b.String()
}

// ItemsMarkdown renders all item collections as tables.
func ItemsMarkdown(st *pocketplan.State) string {
	var b strings.Builder
	recurringSection(&b, "Recurring income", st.RecurringIncome, st.Currency)
	recurringSection(&b, "Recurring bills", st.RecurringBills, st.Currency)
	oneTimeSection(&b, "One-time income", st.OneTimeIncome, st.Currency)
	oneTimeSection(&b, "One-time spends", st.OneTimeSpends, st.Currency)
	if b.Len() == 0 {
		return "No items yet.\n"
	}
	return b.String()
}

func recurringSection(b *strings.Builder, title string, items []pocketplan.RecurringItem, currency string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	b.WriteString("| ID | Name | Amount | Starts | Repeats |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, it := range items {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
			shortID(it.ID), it.Name, pocketplan.FormatAmount(it.Amount, currency), it.StartDate, it.Interval)
	}
	b.WriteString("\n")
}

func oneTimeSection(b *strings.Builder, title string, items []pocketplan.OneTimeItem, currency string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	b.WriteString("| ID | Name | Amount | Date |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, it := range items {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			shortID(it.ID), it.Name, pocketplan.FormatAmount(it.Amount, currency), it.Date)
	}
	b.WriteString("\n")
}

// shortID keeps listings readable; removal matches on id prefixes.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
