// Package remove provides the runner that deletes a record.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/record"
)

// ErrAborted is returned when the confirmation is declined.
var ErrAborted = errors.New("delete cancelled")

// Remove deletes a record by id after confirming.
type Remove struct {
	ID      string
	Yes     bool
	Service *app.Service
	// Confirm asks before deleting; nil uses a terminal prompt.
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no journal")
	}
	w := n.Out
	if w == nil {
		w = color.Output
	}

	kind, r, err := n.Service.Find(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: w}
	pp.Records(r)

	if !n.Yes {
		confirm := n.Confirm
		if confirm == nil {
			confirm = Prompt
		}
		ok, err := confirm(fmt.Sprintf("Delete this %s record permanently", kind))
		if err != nil {
			return err
		}
		if !ok {
			return ErrAborted
		}
	}

	if err := n.Service.Delete(ctx, kind, n.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Deleted %q from %s.\n", record.Title(r), kind)
	return nil
}

// Prompt asks a yes/no question on the terminal.
func Prompt(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
