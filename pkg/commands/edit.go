package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/commands/options"
	"tableflip.dev/memovault/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}
	var clearMood, lock, unlock bool

	cmd := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Edit an existing entry",
		Example: `
memovault edit --id 171dff69 -t "Better title"
memovault edit --id 171dff69 -m calm --tags walk,coffee
memovault edit --id 171dff69 --clear-mood --lock
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, _, err := loadRepository()
			if err != nil {
				return err
			}

			s := edit.Edit{
				Repo:   repo,
				ID:     io.ID,
				ShowID: io.ShowID,
			}
			// only fields whose flags were set become part of the patch
			if cmd.Flags().Changed("title") {
				s.Title = &eo.Title
			}
			if cmd.Flags().Changed("content") {
				s.Content = &eo.Content
			}
			if cmd.Flags().Changed("date") {
				s.Date = &eo.Date
			}
			if cmd.Flags().Changed("tags") {
				s.Tags = &eo.Tags
			}
			if clearMood {
				empty := ""
				s.MoodID = &empty
			} else if cmd.Flags().Changed("mood") {
				s.MoodID = &eo.Mood
			}
			if lock {
				t := true
				s.Lock = &t
			} else if unlock {
				f := false
				s.Lock = &f
			}

			return s.Do(context.Background())
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&eo.Content, "content", "", "Replace the entry body.")
	cmd.Flags().BoolVar(&clearMood, "clear-mood", false, "Remove the recorded mood.")
	cmd.Flags().BoolVar(&lock, "lock", false, "Mark the entry locked.")
	cmd.Flags().BoolVar(&unlock, "unlock", false, "Mark the entry unlocked.")
	_ = cmd.MarkFlagRequired("id")

	topLevel.AddCommand(cmd)
}
