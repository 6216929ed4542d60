// Package get provides runners that list and show journal records.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/record"
)

// Get lists the records of one or more collections, newest first.
type Get struct {
	ShowID  bool
	Full    bool
	Kinds   []record.Kind
	Limit   int
	Service *app.Service
	Out     io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID, Full: n.Full, Out: n.Out}

	if n.Service == nil {
		return errors.New("can not get, no journal")
	}
	kinds := n.Kinds
	if len(kinds) == 0 {
		kinds = record.Kinds()
	}
	pp.NewLine()

	for _, k := range kinds {
		all, err := n.Service.List(ctx, k)
		if err != nil {
			return err
		}
		if len(kinds) > 1 && len(all) == 0 {
			continue
		}
		pp.TitleWithCount(k.Description(), len(all))
		if n.Limit > 0 && len(all) > n.Limit {
			all = all[:n.Limit]
		}
		pp.Records(all...)
	}
	return nil
}

// Show renders a single record, found by id in any collection.
type Show struct {
	ID      string
	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no journal")
	}
	kind, r, err := n.Service.Find(ctx, n.ID)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	return pp.Record(kind, r)
}
