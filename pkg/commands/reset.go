package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the profile and every entry from this device",
		Example: `
memovault reset --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			if err := p.EraseAll(); err != nil {
				return err
			}
			fmt.Println("journal erased")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion.")

	topLevel.AddCommand(cmd)
}
