package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/commands/options"
	"tableflip.dev/memovault/pkg/query"
	"tableflip.dev/memovault/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Browse, search, and filter entries",
		Example: `
memovault get
memovault get -s coffee --tag rest
memovault get --mood happy,amazing --from 2024-01-01 --to 2024-01-31 --sort mood
memovault get --id 171dff69-f8b9-9dca-0000-000000000000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := query.ParseSortKey(fo.Sort)
			if !ok {
				return fmt.Errorf("unknown sort %q", fo.Sort)
			}

			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			s := get.Get{
				Repo:   repo,
				ShowID: io.ShowID,
				ID:     io.ID,
				Filter: query.Filter{
					Query:   fo.Query,
					Tag:     fo.Tag,
					Date:    fo.Date,
					From:    fo.From,
					To:      fo.To,
					MoodIDs: fo.Moods,
				},
				SortKey: key,
			}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
