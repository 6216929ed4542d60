// Package watch provides the runner that reports when another process
// rewrites the journal.
package watch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

// Watch prints a line per changed collection until ctx ends.
type Watch struct {
	Store store.KV
	Out   io.Writer
	// Ready, when set, is called once the watcher is listening.
	Ready func()
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not watch, no journal")
	}
	w := n.Out
	if w == nil {
		w = color.Output
	}

	events, err := store.Watch(ctx, n.Store)
	if err != nil {
		return err
	}
	if n.Ready != nil {
		n.Ready()
	}

	faint := color.New(color.Faint)
	bold := color.New(color.Bold)
	_, _ = faint.Fprintln(w, "Watching for changes, ctrl-c to stop.")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			stamp := time.Now().Format("15:04:05")
			switch ev.Type {
			case store.EventKeyChanged:
				kind, known := record.KindForKey(ev.Key)
				if !known {
					continue
				}
				n := len(store.Load[json.RawMessage](n.Store, ev.Key))
				_, _ = faint.Fprintf(w, "%s ", stamp)
				_, _ = bold.Fprint(w, kind)
				_, _ = fmt.Fprintf(w, " changed, %d records\n", n)
			case store.EventInvalidated:
				_, _ = faint.Fprintf(w, "%s ", stamp)
				_, _ = fmt.Fprintln(w, "journal changed")
			}
		}
	}
}
