package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/commands/options"
	"tableflip.dev/memovault/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}
	var analyticsOnly bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal or an analytics snapshot as JSON",
		Example: `
memovault export
memovault export --analytics -r 30d
memovault export -o backup.json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, p, err := loadRepository()
			if err != nil {
				return err
			}
			s := export.Export{
				Repo:        repo,
				Persistence: p,
				Analytics:   analyticsOnly,
				Window:      wo.Window,
				Output:      oo.Output,
			}
			return s.Do(context.Background())
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArgs(cmd, oo)
	cmd.Flags().BoolVar(&analyticsOnly, "analytics", false,
		"Export the analytics snapshot instead of the full backup.")

	topLevel.AddCommand(cmd)
}
