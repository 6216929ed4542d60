// Package stats provides the runner that summarizes the whole journal.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/record"
)

type Stats struct {
	JSON    bool
	Service *app.Service
	Out     io.Writer
}

type jsonStats struct {
	Collection string `json:"collection"`
	Count      int    `json:"count"`
	Words      int    `json:"words"`
	Streak     int    `json:"streak"`
	Longest    int    `json:"longest"`
	Last       string `json:"last,omitempty"`
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get stats, no journal")
	}
	st, err := n.Service.Stats(ctx)
	if err != nil {
		return err
	}

	if !n.JSON {
		pp := printers.PrettyPrint{Out: n.Out}
		pp.NewLine()
		pp.Stats(st)
		return nil
	}

	rows := make([]jsonStats, 0, len(st.Collections)+1)
	for _, cs := range st.Collections {
		rows = append(rows, toJSON(string(cs.Kind), cs))
	}
	rows = append(rows, toJSON("total", st.Total))
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	w := n.Out
	if w == nil {
		w = color.Output
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func toJSON(name string, cs app.CollectionStats) jsonStats {
	out := jsonStats{
		Collection: name,
		Count:      cs.Count,
		Words:      cs.Words,
		Streak:     cs.Streak,
		Longest:    cs.Longest,
	}
	if !cs.Last.IsZero() {
		out.Last = cs.Last.UTC().Format(record.Layout)
	}
	return out
}
