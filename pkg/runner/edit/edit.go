package edit

import (
	"context"
	"errors"

	"tableflip.dev/memovault/pkg/diary"
	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/mood"
	"tableflip.dev/memovault/pkg/printers"
)

type Edit struct {
	Repo   *diary.Repository
	ID     string
	ShowID bool

	// nil means leave the field alone
	Title   *string
	Content *string
	Date    *string
	MoodID  *string // empty string clears the mood
	Tags    *[]string
	Lock    *bool
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not edit, no repository")
	}
	if n.ID == "" {
		return errors.New("can not edit, no id")
	}

	p := entry.Patch{
		Title:    n.Title,
		Content:  n.Content,
		Date:     n.Date,
		Tags:     n.Tags,
		IsLocked: n.Lock,
	}
	if n.MoodID != nil {
		if *n.MoodID == "" {
			var none *mood.Mood
			p.Mood = &none
		} else {
			m, err := mood.ForAlias(*n.MoodID)
			if err != nil {
				return err
			}
			mp := &m
			p.Mood = &mp
		}
	}

	e, err := n.Repo.Update(n.ID, p)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Updated")
	pp.Entries(e)
	return nil
}
