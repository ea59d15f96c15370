package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "Show the mood catalog",
		Example: `
memovault moods
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := moods.Moods{}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
