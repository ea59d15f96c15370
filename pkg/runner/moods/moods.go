package moods

import (
	"context"

	"tableflip.dev/memovault/pkg/mood"
	"tableflip.dev/memovault/pkg/printers"
)

type Moods struct{}

func (n *Moods) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Moods")
	pp.Catalog(mood.Catalog())
	return nil
}
