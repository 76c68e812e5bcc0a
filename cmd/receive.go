package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

// receiveCmd holds the flags for the 'receive' subcommand.
type receiveCmd struct {
	name   string
	amount string
	on     string
}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "add a one-time income" }
func (*receiveCmd) Usage() string {
	return `ppl receive -name <name> -amount <amount> [-on <date>]

  Adds a one-time income, such as a gift or a refund, applying exactly once.
`
}

func (c *receiveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name of the income.")
	f.StringVar(&c.amount, "amount", "", "Amount, a positive decimal.")
	f.StringVar(&c.on, "on", pocketplan.Today().String(), "Date of the income (YYYY-MM-DD).")
}

func (c *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return addOneTime(c.name, c.amount, c.on, true)
}
