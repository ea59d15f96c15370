package get

import (
	"context"
	"errors"

	"tableflip.dev/memovault/pkg/diary"
	"tableflip.dev/memovault/pkg/printers"
	"tableflip.dev/memovault/pkg/query"
)

type Get struct {
	Repo    *diary.Repository
	ShowID  bool
	ID      string
	Filter  query.Filter
	SortKey query.SortKey
}

func (n *Get) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not get, no repository")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.ID != "" {
		e, ok := n.Repo.Get(n.ID)
		if !ok {
			return diary.ErrNotFound
		}
		pp.Title(e.Title)
		pp.Entries(e)
		return nil
	}

	all := n.Repo.All()
	all = n.Filter.Apply(all)
	if n.SortKey != "" {
		all = query.Sort(all, n.SortKey)
	}

	pp.TitleWithCount("Journal", len(all))
	pp.Entries(all...)
	return nil
}
