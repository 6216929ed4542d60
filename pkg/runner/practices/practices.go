// Package practices provides a CLI helper that lists the journal's
// practices and where each is stored.
package practices

import (
	"context"
	"io"

	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/record"
)

// Practices prints a table of collections.
type Practices struct {
	Out io.Writer
}

// Do renders every collection with its description and store key.
func (k *Practices) Do(_ context.Context) error {
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Practices(record.Kinds()...)
	return nil
}
