// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the fields of a new or edited entry.
type EntryOptions struct {
	Title       string
	Content     string
	Date        string
	Mood        string
	Tags        []string
	Interactive bool
}

// AddEntryArgs wires entry field flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title for the entry.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Entry date, example: --date="2024-01-02". Defaults to today.`)
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Mood id or name, see 'memovault moods'.")
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil,
		"Comma-separated tags.")
}

// InteractiveArgs registers the interactive prompt flag.
func InteractiveArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Pick the mood interactively.")
}

// FilterOptions captures the browsing filters shared by list-style
// commands.
type FilterOptions struct {
	Query string
	Tag   string
	Moods []string
	Date  string
	From  string
	To    string
	Sort  string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "search", "s", "",
		"Match entries whose title, content, or tags contain the text.")
	cmd.Flags().StringVar(&o.Tag, "tag", "",
		"Match entries carrying the tag.")
	cmd.Flags().StringSliceVar(&o.Moods, "mood", nil,
		"Match entries with any of the given mood ids.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Match entries dated exactly this day.")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Match entries dated on or after this day.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Match entries dated on or before this day.")
	cmd.Flags().StringVar(&o.Sort, "sort", "newest",
		"Order results: newest, oldest, title, or mood.")
}

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of an entry.")
}

// WindowOptions selects an analytics lookback window.
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "range", "r", "30d",
		"Lookback window: 7d, 30d, 90d, or 1y.")
}

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArgs(cmd *cobra.Command, o *OutputOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Destination file. Defaults next to the working directory.")
}
