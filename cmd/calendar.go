package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
	"github.com/ssekandi/pocketplan/renderer"
)

type calendarCmd struct {
	month string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show marked dates" }
func (*calendarCmd) Usage() string {
	return `ppl calendar [-m YYYY-MM]

  Lists every date in the marking window that carries an occurrence, with a
  marker per category. With -m only the given month is shown.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "restrict the calendar to a month (YYYY-MM)")
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, _, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	window := st.MarkingRange()
	if c.month != "" {
		t, err := time.Parse("2006-01", c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid month %q, expected YYYY-MM\n", c.month)
			return subcommands.ExitUsageError
		}
		first := pocketplan.NewDate(t.Year(), t.Month(), 1)
		month := pocketplan.NewRange(first, first.EndOfMonth())
		window, err = intersect(window, month)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	index := pocketplan.BuildMarkingIndex(st.RecurringIncome, st.RecurringBills, st.OneTimeIncome, st.OneTimeSpends, window)
	printMarkdown(renderer.CalendarMarkdown(window, index))
	return subcommands.ExitSuccess
}

// intersect narrows a to the part overlapping b.
func intersect(a, b pocketplan.Range) (pocketplan.Range, error) {
	from, to := a.From, a.To
	if b.From.After(from) {
		from = b.From
	}
	if to.After(b.To) {
		to = b.To
	}
	if from.After(to) {
		return pocketplan.Range{}, fmt.Errorf("month %s is outside the marking window %s to %s", b.From.Format("2006-01"), a.From, a.To)
	}
	return pocketplan.Range{From: from, To: to}, nil
}
