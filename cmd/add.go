package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

// addRecurring parses the shared flags of the bill and income commands,
// appends the new item to the right collection and persists the state.
func addRecurring(name, amountStr, onStr, everyStr string, income bool) subcommands.ExitStatus {
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	amount, err := pocketplan.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	start, err := pocketplan.ParseDate(onStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	iv, err := pocketplan.ParseInterval(everyStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	st, store, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	item := pocketplan.NewRecurringItem(name, amount, start, iv)
	kind := "bill"
	if income {
		st.RecurringIncome = append(st.RecurringIncome, item)
		kind = "income"
	} else {
		st.RecurringBills = append(st.RecurringBills, item)
	}
	if err := pocketplan.SaveState(store, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added recurring %s %q: %s %s from %s (id %s)\n",
		kind, item.Name, pocketplan.FormatAmount(item.Amount, st.Currency), item.Interval, item.StartDate, item.ID)
	return subcommands.ExitSuccess
}

// addOneTime is the one-time counterpart of addRecurring.
func addOneTime(name, amountStr, onStr string, income bool) subcommands.ExitStatus {
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}
	amount, err := pocketplan.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := pocketplan.ParseDate(onStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	st, store, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	item := pocketplan.NewOneTimeItem(name, amount, on)
	kind := "spend"
	if income {
		st.OneTimeIncome = append(st.OneTimeIncome, item)
		kind = "income"
	} else {
		st.OneTimeSpends = append(st.OneTimeSpends, item)
	}
	if err := pocketplan.SaveState(store, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added one-time %s %q: %s on %s (id %s)\n",
		kind, item.Name, pocketplan.FormatAmount(item.Amount, st.Currency), item.Date, item.ID)
	return subcommands.ExitSuccess
}
