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

type balanceCmd struct {
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "project the balance on a date" }
func (*balanceCmd) Usage() string {
	return `ppl balance [-d YYYY-MM-DD]

  Projects the balance on the given date from the initial balance and every
  recurring and one-time item recorded so far. Defaults to today.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", pocketplan.Today().String(), "date to project the balance on")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	balance := pocketplan.ProjectBalance(st.Anchor, st.RecurringIncome, st.RecurringBills, st.OneTimeIncome, st.OneTimeSpends, on)
	formatted := pocketplan.FormatAmount(balance, st.Currency)

	printMarkdown(renderer.BalanceMarkdown(on, formatted, st.Anchor, st.Currency))
	return subcommands.ExitSuccess
}
