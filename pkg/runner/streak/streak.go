// Package streak provides runners that summarize writing streaks.
package streak

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/record"
)

// Streak prints the current streak for the selected collections.
type Streak struct {
	Kinds   []record.Kind
	Service *app.Service
	Out     io.Writer
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get streak, no journal")
	}
	days, err := n.Service.Streak(ctx, n.Kinds...)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Streak(label(n.Kinds), days)
	return nil
}

// Calendar prints a month grid with the days that have records.
type Calendar struct {
	Month   time.Time
	Today   time.Time
	Kinds   []record.Kind
	Service *app.Service
	Out     io.Writer
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get calendar, no journal")
	}
	written, err := n.Service.Calendar(ctx, n.Month, n.Kinds...)
	if err != nil {
		return err
	}
	today := n.Today
	if today.IsZero() {
		today = time.Now()
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Calendar(n.Month, written, today)

	days, err := n.Service.Streak(ctx, n.Kinds...)
	if err != nil {
		return err
	}
	pp.Streak(label(n.Kinds), days)
	return nil
}

func label(kinds []record.Kind) string {
	if len(kinds) == 0 || len(kinds) == len(record.Kinds()) {
		return "Streak"
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return "Streak (" + strings.Join(names, ", ") + ")"
}
