// Package session runs timed writing sessions: morning pages and timed
// writing sprints.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/gen2brain/beeep"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/logger"
	"tableflip.dev/storyjournal/pkg/printers"
	"tableflip.dev/storyjournal/pkg/prompts"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/timer"
)

// ErrDiscarded is returned when a session ends without saving.
var ErrDiscarded = errors.New("session ended without saving")

// Session runs one timed session and saves what was written.
type Session struct {
	Service *app.Service
	// Kind is record.KindMorningPages or record.KindTimedWritings.
	Kind    record.Kind
	Minutes int
	Prompt  string
	// Random draws a prompt from the deck and lets the writer reshuffle it.
	Random bool
	Notify bool
	// Plain runs the countdown on the terminal and then reads the text
	// from In instead of opening the editor.
	Plain bool

	In     io.Reader
	Out    io.Writer
	Rand   *rand.Rand
	Source timer.Source
}

func (n *Session) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not start a session, no journal")
	}
	if n.Kind != record.KindMorningPages && n.Kind != record.KindTimedWritings {
		return fmt.Errorf("%s is not a timed practice", n.Kind)
	}
	if n.Minutes <= 0 {
		return fmt.Errorf("%w: duration must be at least one minute", app.ErrInvalid)
	}
	if n.Random && n.Prompt == "" && n.Kind == record.KindTimedWritings {
		n.Prompt = prompts.Random("", n.Rand)
	}

	if n.Plain {
		return n.plain(ctx)
	}

	m := NewModel(Options{
		Title:   n.title(),
		Prompt:  n.Prompt,
		Shuffle: n.Random && n.Kind == record.KindTimedWritings,
		Minutes: n.Minutes,
		Save: func(content, prompt string) (record.Record, error) {
			return n.save(ctx, content, prompt)
		},
		Notify: n.notify,
		Rand:   n.Rand,
	})
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	fm, ok := final.(Model)
	if !ok || fm.Saved() == nil {
		return ErrDiscarded
	}
	n.print(fm.Saved())
	return nil
}

func (n *Session) title() string {
	if n.Kind == record.KindMorningPages {
		return "Morning pages"
	}
	return "Timed writing"
}

func (n *Session) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *Session) save(ctx context.Context, content, prompt string) (record.Record, error) {
	if n.Kind == record.KindMorningPages {
		m, err := n.Service.SaveMorningPages(ctx, content, n.Minutes)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	var p *string
	if prompt != "" {
		p = &prompt
	}
	t, err := n.Service.SaveTimedWriting(ctx, content, n.Minutes, p)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (n *Session) notify(message string) {
	if !n.Notify {
		return
	}
	if err := beeep.Notify("Story Journal", message, ""); err != nil {
		logger.Debug("session: notification failed", "error", err)
		if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			logger.Debug("session: beep failed", "error", err)
		}
	}
}

// plain counts down on the terminal, printing the remaining time each
// minute, then reads the text from In.
func (n *Session) plain(ctx context.Context) error {
	w := n.out()
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	_, _ = bold.Fprintf(w, "%s, %d minutes.\n", n.title(), n.Minutes)
	if n.Prompt != "" {
		_, _ = fmt.Fprintln(w, n.Prompt)
	}

	src := n.Source
	if src == nil {
		src = timer.NewTicker(time.Second)
	}
	c := &timer.Countdown{}
	c.Start(n.Minutes)
	err := timer.Run(ctx, c, src, func(s timer.Snapshot) {
		if s.State == timer.Running && s.Remaining%60 == 0 {
			_, _ = faint.Fprintf(w, "%s left\n", timer.Format(s.Remaining))
		}
	})
	if err != nil {
		return err
	}
	_, _ = bold.Fprintln(w, "Time's up.")
	n.notify(fmt.Sprintf("%s: %d minutes are up.", n.title(), n.Minutes))

	in := n.In
	if in == nil {
		in = os.Stdin
	}
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	rec, err := n.save(ctx, string(b), n.Prompt)
	if err != nil {
		return err
	}
	n.print(rec)
	return nil
}

func (n *Session) print(r record.Record) {
	pp := printers.PrettyPrint{ShowID: true, Out: n.out()}
	pp.NewLine()
	pp.TitleWithCount(n.Kind.Description(), 1)
	pp.Records(r)
}
