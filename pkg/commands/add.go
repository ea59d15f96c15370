package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/memovault/pkg/commands/options"
	"tableflip.dev/memovault/pkg/mood"
	"tableflip.dev/memovault/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a journal entry",
		Example: `
memovault add "slept in, long walk, good coffee" -t "Lazy Sunday" -m happy --tags rest,coffee
memovault add "rough standup" --date 2024-01-02 -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && eo.Title == "" {
				return errors.New("an entry needs content or a title")
			}
			eo.Content = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if eo.Interactive {
				picked, err := promptMood()
				if err != nil {
					return err
				}
				eo.Mood = picked
			}

			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			s := add.Add{
				Repo:    repo,
				Title:   eo.Title,
				Content: eo.Content,
				Date:    eo.Date,
				MoodID:  eo.Mood,
				Tags:    eo.Tags,
				ShowID:  io.ShowID,
			}
			return s.Do(context.Background())
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.InteractiveArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func promptMood() (string, error) {
	moods := mood.Catalog()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Emoji }} {{ .Name | cyan }}",
		Inactive: "   {{ .Emoji }} {{ .Name | cyan }}",
		Selected: "➜  {{ .Emoji }} {{ .Name }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(moods[index].Name)
		return strings.Contains(name, strings.ToLower(input))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "How are you feeling",
		Items:     moods,
		Templates: templates,
		Size:      len(moods),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return moods[i].ID, nil
}
