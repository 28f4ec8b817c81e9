package main

import (
	"fmt"

	"github.com/fwojciec/wordtracker"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm clearing the repository\n")
		return wordtracker.Errorf(wordtracker.EINVALID, "use --force to confirm clearing the repository")
	}

	if err := deps.Repository.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wordtracker.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Repository cleared")
	return nil
}
