package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

// spendCmd holds the flags for the 'spend' subcommand.
type spendCmd struct {
	name   string
	amount string
	on     string
}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "add a one-time spend" }
func (*spendCmd) Usage() string {
	return `ppl spend -name <name> -amount <amount> [-on <date>]

  Adds a one-time expense applying exactly once, on the given date.
`
}

func (c *spendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the spend.")
	f.StringVar(&c.amount, "amount", "", "Amount, a positive decimal.")
	f.StringVar(&c.on, "on", pocketplan.Today().String(), "Date of the spend (YYYY-MM-DD).")
}

func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addOneTime(c.name, c.amount, c.on, false)
}
