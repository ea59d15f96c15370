// Package commands assembles the memovault command tree. Commands parse
// flags and delegate to runners; no journal logic lives here.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/diary"
	"tableflip.dev/memovault/pkg/store"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "memovault",
		Short: "A personal journal on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addMoods(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addProfile(topLevel)
	addReset(topLevel)
	addVersion(topLevel)
}

// loadRepository opens the store and the repository. A load failure is
// reported as a warning; the journal keeps working in memory for the rest
// of the session.
func loadRepository() (*diary.Repository, store.Persistence, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	repo, err := diary.NewRepository(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (starting with an empty journal)\n", err)
	}
	return repo, p, nil
}
