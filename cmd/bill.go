package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

// billCmd holds the flags for the 'bill' subcommand.
type billCmd struct {
	name   string
	amount string
	on     string
	every  string
}

func (*billCmd) Name() string     { return "bill" }
func (*billCmd) Synopsis() string { return "add a recurring bill" }
func (*billCmd) Usage() string {
	return `ppl bill -name <name> -amount <amount> [-on <start_date>] [-every <interval>]

  Adds a recurring expense. The bill applies on its start date and repeats
  at the given interval (weekly, biweekly, monthly, quarterly, biannually,
  yearly) forever.
`
}

func (c *billCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the bill.")
	f.StringVar(&c.amount, "amount", "", "Amount, a positive decimal.")
	f.StringVar(&c.on, "on", pocketplan.Today().String(), "First occurrence date (YYYY-MM-DD).")
	f.StringVar(&c.every, "every", "monthly", "Recurrence interval.")
}

func (c *billCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addRecurring(c.name, c.amount, c.on, c.every, false)
}
