package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/ssekandi/pocketplan"
)

type setCmd struct {
	balance    string
	start      string
	currency   string
	dotYears   int
	remindDays int
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "change a setting" }
func (*setCmd) Usage() string {
	return `ppl set [-balance AMOUNT] [-start YYYY-MM-DD] [-currency CODE] [-dot-years N] [-remind-days N]

  Updates one or more settings. The initial balance may be negative. The
  calendar window spans from the start date to dot-years years past it.
  Without flags the current settings and the currency picker are printed.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.balance, "balance", "", "initial balance at the start date")
	f.StringVar(&c.start, "start", "", "date tracking begins")
	f.StringVar(&c.currency, "currency", "", "ISO 4217 display currency")
	f.IntVar(&c.dotYears, "dot-years", -1, "years of calendar markings past the start date (0 to 10)")
	f.IntVar(&c.remindDays, "remind-days", -1, "days before a bill is due to remind")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, store, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.balance == "" && c.start == "" && c.currency == "" && c.dotYears < 0 && c.remindDays < 0 {
		printSettings(st)
		return subcommands.ExitSuccess
	}

	if c.balance != "" {
		// Signed on purpose: the tracking can start in overdraft.
		balance, err := decimal.NewFromString(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid balance %q\n", c.balance)
			return subcommands.ExitUsageError
		}
		st.Anchor.InitialBalance = balance
	}
	if c.start != "" {
		start, err := pocketplan.ParseDate(c.start)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		st.Anchor.TrackingStart = start
	}
	if c.currency != "" {
		if err := pocketplan.ValidateCurrency(c.currency); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		st.Currency = c.currency
	}
	if c.dotYears >= 0 {
		if c.dotYears > 10 {
			fmt.Fprintln(os.Stderr, "Error: dot-years must be between 0 and 10")
			return subcommands.ExitUsageError
		}
		st.DotRangeYears = c.dotYears
	}
	if c.remindDays >= 0 {
		st.RemindDaysBefore = c.remindDays
	}

	if err := pocketplan.SaveState(store, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Settings updated")
	return subcommands.ExitSuccess
}

// printSettings shows the current settings and the currency picker.
func printSettings(st *pocketplan.State) {
	fmt.Printf("balance:      %s\n", pocketplan.FormatAmount(st.Anchor.InitialBalance, st.Currency))
	fmt.Printf("start:        %s\n", st.Anchor.TrackingStart)
	fmt.Printf("currency:     %s\n", st.Currency)
	fmt.Printf("dot-years:    %d\n", st.DotRangeYears)
	fmt.Printf("remind-days:  %d\n", st.RemindDaysBefore)
	fmt.Println("\nAvailable currencies:")
	for _, c := range pocketplan.Currencies() {
		fmt.Printf("  %s  %-4s %s\n", c.Code, c.Symbol, c.Name)
	}
}
