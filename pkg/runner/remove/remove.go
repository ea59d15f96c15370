package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/memovault/pkg/diary"
)

type Remove struct {
	Repo *diary.Repository
	ID   string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not remove, no repository")
	}
	if n.ID == "" {
		return errors.New("can not remove, no id")
	}
	if err := n.Repo.Remove(n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
