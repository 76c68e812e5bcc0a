package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an item by id" }
func (*removeCmd) Usage() string {
	return `ppl remove <id>

  Removes the item whose id starts with the given prefix. Use 'ppl list' to
  find ids. The prefix must match exactly one item.
`
}

func (*removeCmd) SetFlags(f *flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one id prefix")
		return subcommands.ExitUsageError
	}
	prefix := f.Arg(0)

	st, store, err := loadState()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, matches := removeByPrefix(st, prefix)
	switch matches {
	case 0:
		fmt.Fprintf(os.Stderr, "Error: no item with id prefix %q\n", prefix)
		return subcommands.ExitFailure
	case 1:
		// fall through to save
	default:
		fmt.Fprintf(os.Stderr, "Error: id prefix %q matches %d items, be more specific\n", prefix, matches)
		return subcommands.ExitFailure
	}

	if err := pocketplan.SaveState(store, st); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %q\n", removed)
	return subcommands.ExitSuccess
}

// removeByPrefix removes the single item matching the prefix from whichever
// collection holds it. It reports the number of matches across all
// collections; the state is only mutated when exactly one item matches.
func removeByPrefix(st *pocketplan.State, prefix string) (name string, matches int) {
	recurring := []*[]pocketplan.RecurringItem{&st.RecurringBills, &st.RecurringIncome}
	oneTime := []*[]pocketplan.OneTimeItem{&st.OneTimeSpends, &st.OneTimeIncome}

	type hit struct {
		del  func()
		name string
	}
	var hits []hit

	for _, list := range recurring {
		items := *list
		for i := range items {
			if strings.HasPrefix(items[i].ID, prefix) {
				list, i := list, i
				hits = append(hits, hit{name: items[i].Name, del: func() {
					*list = append((*list)[:i], (*list)[i+1:]...)
				}})
			}
		}
	}
	for _, list := range oneTime {
		items := *list
		for i := range items {
			if strings.HasPrefix(items[i].ID, prefix) {
				list, i := list, i
				hits = append(hits, hit{name: items[i].Name, del: func() {
					*list = append((*list)[:i], (*list)[i+1:]...)
				}})
			}
		}
	}

	if len(hits) == 1 {
		hits[0].del()
		return hits[0].name, 1
	}
	return "", len(hits)
}
