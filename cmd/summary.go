package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
	"github.com/ssekandi/pocketplan/renderer"
)

type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show a month's income and expenses" }
func (*summaryCmd) Usage() string {
	return `ppl summary [-d YYYY-MM-DD]

  Totals the income and expenses falling in the month of the given date, with
  an expense breakdown by item. Defaults to the current month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pocketplan.Today().String(), "any date inside the month to summarise")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := pocketplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	st, _, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := pocketplan.NewMonthSummary(st.RecurringIncome, st.RecurringBills, st.OneTimeIncome, st.OneTimeSpends, on)
	printMarkdown(renderer.SummaryMarkdown(s, st.Currency))
	return subcommands.ExitSuccess
}
