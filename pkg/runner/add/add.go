package add

import (
	"context"
	"errors"

	"tableflip.dev/memovault/pkg/diary"
	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/mood"
	"tableflip.dev/memovault/pkg/printers"
)

type Add struct {
	Repo    *diary.Repository
	Title   string
	Content string
	Date    string
	MoodID  string
	Tags    []string
	ShowID  bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not add, no repository")
	}

	in := entry.Input{
		Title:   n.Title,
		Content: n.Content,
		Date:    n.Date,
		Tags:    n.Tags,
	}
	if n.MoodID != "" {
		m, err := mood.ForAlias(n.MoodID)
		if err != nil {
			return err
		}
		in.Mood = &m
	}

	e, err := n.Repo.Add(in)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Added")
	pp.Entries(e)
	return nil
}
