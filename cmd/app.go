// Package cmd implements the CLI application to manage a pocketplan data
// file: cash-flow items, settings, balance projections and calendar views.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/ssekandi/pocketplan"
)

// Commands lists all subcommands. A main package registers each of them on
// a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&billCmd{},
	&incomeCmd{},
	&spendCmd{},
	&receiveCmd{},
	&listCmd{},
	&removeCmd{},
	&balanceCmd{},
	&calendarCmd{},
	&summaryCmd{},
	&setCmd{},
	&remindCmd{},
}

// As a CLI application the lifecycle is very short lived, so it is ok to use
// global variables.

var storeFile = flag.String("store-file", "pocketplan.json", "Path to the data file")

// loadState opens the store and decodes the full state snapshot.
func loadState() (*pocketplan.State, pocketplan.Store, error) {
	store, err := pocketplan.OpenFileStore(*storeFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open data file: %w", err)
	}
	st, err := pocketplan.LoadState(store)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load data file: %w", err)
	}
	return st, store, nil
}
