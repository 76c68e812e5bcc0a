package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/ssekandi/pocketplan"
	"github.com/ssekandi/pocketplan/schedule"
)

type remindCmd struct {
	dryRun bool
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "run bill reminders" }
func (*remindCmd) Usage() string {
	return `ppl remind [-dry-run]

  Plans one reminder per recurring bill, a configurable number of days before
  its next due date (see 'ppl set -remind-days'), and stays running to fire
  them. With -dry-run the plan is printed and nothing is scheduled.
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "print the reminder plan and exit")
}

func (c *remindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st, _, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	reminders := schedule.Plan(st.RecurringBills, st.RemindDaysBefore, time.Now())
	if len(reminders) == 0 {
		fmt.Println("No reminders to schedule")
		return subcommands.ExitSuccess
	}

	for _, r := range reminders {
		fmt.Printf("%s due %s, reminding at %s\n", r.Name, r.Due, r.At.Format(time.RFC3339))
	}
	if c.dryRun {
		return subcommands.ExitSuccess
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sched := schedule.NewScheduler(func(r schedule.Reminder) {
		fmt.Printf("🔔 %s is due on %s (%s)\n", r.Name, r.Due, pocketplan.FormatAmount(amountOf(st, r.ItemID), st.Currency))
	})
	sched.Start(ctx)
	for _, r := range reminders {
		if err := sched.Schedule(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot schedule reminder for %q: %v\n", r.Name, err)
		}
	}

	fmt.Println("Reminders scheduled, press Ctrl-C to stop")
	<-ctx.Done()
	sched.Stop()
	return subcommands.ExitSuccess
}

// amountOf looks a bill's amount back up by id for the notification text.
func amountOf(st *pocketplan.State, itemID string) decimal.Decimal {
	for _, bill := range st.RecurringBills {
		if bill.ID == itemID {
			return bill.Amount
		}
	}
	return decimal.Zero
}
