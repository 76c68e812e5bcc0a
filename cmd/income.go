package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

// incomeCmd holds the flags for the 'income' subcommand.
type incomeCmd struct {
	name   string
	amount string
	on     string
	every  string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "add a recurring income" }
func (*incomeCmd) Usage() string {
	return `ppl income -name <name> -amount <amount> [-on <start_date>] [-every <interval>]

  Adds a recurring income, such as a salary. The income applies on its start
  date and repeats at the given interval forever.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the income.")
	f.StringVar(&c.amount, "amount", "", "Amount, a positive decimal.")
	f.StringVar(&c.on, "on", pocketplan.Today().String(), "First occurrence date (YYYY-MM-DD).")
	f.StringVar(&c.every, "every", "monthly", "Recurrence interval.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addRecurring(c.name, c.amount, c.on, c.every, true)
}
