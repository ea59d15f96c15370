package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/commands/options"
	"tableflip.dev/memovault/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove --id <id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an entry",
		Example: `
memovault remove --id 171dff69
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Repo: repo,
				ID:   io.ID,
			}
			return s.Do(context.Background())
		},
	}

	options.AddIDArgs(cmd, io)
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}
