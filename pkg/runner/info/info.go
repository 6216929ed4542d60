// Package info reports where the journal is configured and stored.
package info

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/store"
)

type Info struct {
	Config store.Config
	Store  store.KV
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintf(w, "%s found on env, using %s\n", store.ConfigPathEnv, override)
	} else {
		_, _ = fmt.Fprintf(w, "%s env var not set\n", store.ConfigPathEnv)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := store.ConfigFile(n.Config); f != "" {
		_, _ = fmt.Fprintln(w, "Config file:", f)
	}
	_, _ = fmt.Fprintln(w, "Config.path:", n.Config.BasePath())
	_, _ = fmt.Fprintln(w, "Backend:", n.Config.Backend())
	_, _ = fmt.Fprintln(w, "Data:", store.DataPath(n.Config))
	_, _ = fmt.Fprintln(w, "Logs:", store.LogDir(n.Config))

	if n.Store == nil {
		return errors.New("failed to open the journal store")
	}

	_, _ = fmt.Fprintf(w, "Collections:\n")
	found := 0
	for _, key := range n.Store.Keys() {
		kind, ok := record.KindForKey(key)
		if !ok {
			continue
		}
		count := len(store.Load[json.RawMessage](n.Store, key))
		_, _ = fmt.Fprintf(w, "  %-16s %-36s %d\n", kind, key, count)
		found++
	}

	if found == 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", "no collections")
	}

	return nil
}
