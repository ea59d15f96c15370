package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/memovault/pkg/diary"
	"tableflip.dev/memovault/pkg/export"
	"tableflip.dev/memovault/pkg/query"
	"tableflip.dev/memovault/pkg/store"
	"tableflip.dev/memovault/pkg/timeutil"
)

type Export struct {
	Repo        *diary.Repository
	Persistence store.Persistence

	// Analytics selects the analytics document instead of the full backup.
	Analytics bool
	Window    string // analytics lookback, e.g. 30d
	Output    string // destination file; defaulted when empty
}

func (n *Export) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not export, no repository")
	}

	if n.Analytics {
		from, to, label, err := timeutil.WindowRange(n.Window, time.Now())
		if err != nil {
			return err
		}
		scoped := query.ByDateRange(n.Repo.All(), from, to)
		doc := export.Analytics(scoped, label)
		out := n.Output
		if out == "" {
			out = fmt.Sprintf("memovault-analytics-%s.json", label)
		}
		if err := export.WriteFile(out, doc); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
		return nil
	}

	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	u, err := n.Persistence.ReadUser()
	if err != nil {
		return err
	}
	doc := export.Full(u, n.Repo.All())
	out := n.Output
	if out == "" {
		out = fmt.Sprintf("memovault-export-%s.json", timeutil.Today())
	}
	if err := export.WriteFile(out, doc); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
