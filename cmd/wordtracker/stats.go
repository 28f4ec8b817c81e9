package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wordtracker"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	tree, err := deps.Repository.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}

	if tree.IsEmpty() {
		fmt.Fprintln(deps.Stdout, "Repository is empty. Use 'wordtracker track FILE...' to index files.")
		return nil
	}

	occurrences := 0
	for w := range tree.All() {
		occurrences += w.TotalFrequency()
	}

	fmt.Fprintf(deps.Stdout, "Words:       %d\n", tree.Len())
	fmt.Fprintf(deps.Stdout, "Occurrences: %d\n", occurrences)
	fmt.Fprintf(deps.Stdout, "Height:      %d\n", tree.Height())

	if deps.History == nil {
		return nil
	}
	snapshots, err := deps.History.Snapshots(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saves:       %d\n", len(snapshots))
	if len(snapshots) > 0 {
		fmt.Fprintf(deps.Stdout, "Last saved:  %s\n", snapshots[0].SavedAt.Local().Format(time.DateTime))
	}
	return nil
}
