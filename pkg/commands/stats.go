package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/commands/options"
	"tableflip.dev/memovault/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var activity bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Mood, tag, and activity analytics",
		Example: `
memovault stats
memovault stats -r 7d --activity
memovault stats -r 1y
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			s := stats.Stats{
				Repo:     repo,
				Window:   wo.Window,
				Activity: activity,
			}
			return s.Do(context.Background())
		},
	}

	options.AddWindowArgs(cmd, wo)
	cmd.Flags().BoolVar(&activity, "activity", false, "Include the day-by-day activity table.")

	topLevel.AddCommand(cmd)
}
