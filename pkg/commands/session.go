package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/runner/session"
)

func addMorning(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:     "morning",
		Aliases: []string{"pages"},
		Short:   "Write morning pages against a timer.",
		Long: options.Wrap80(`Morning pages: write without stopping until the timer ends. The
default length comes from morning.minutes in the config (20).`),
		Example: `
storyjournal morning
storyjournal morning -m 30
storyjournal morning --plain < pages.txt
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, record.KindMorningPages, so)
		},
	}
	options.AddSessionArgs(cmd, so, 0)

	topLevel.AddCommand(cmd)
}

func addSprint(topLevel *cobra.Command) {
	so := &options.SessionOptions{}

	cmd := &cobra.Command{
		Use:     "sprint",
		Aliases: []string{"timed"},
		Short:   "Timed writing sprint, optionally to a prompt.",
		Long: options.Wrap80(`A timed writing sprint. The default length comes from sprint.minutes
in the config (10). With --random a prompt is drawn from the deck and ctrl+p
draws another.`),
		Example: `
storyjournal sprint
storyjournal sprint -m 5 --random
storyjournal sprint -p "Write about a smell from childhood."
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, record.KindTimedWritings, so)
		},
	}
	options.AddSessionArgs(cmd, so, 0)
	options.AddPromptArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

func runSession(cmd *cobra.Command, kind record.Kind, so *options.SessionOptions) error {
	cmd.SilenceUsage = true
	svc, _, done, err := openJournal()
	if err != nil {
		return output.HandleError(err)
	}
	defer done()

	minutes := so.Minutes
	if minutes == 0 {
		minutes = cfg.SprintMinutes()
		if kind == record.KindMorningPages {
			minutes = cfg.MorningMinutes()
		}
	}

	s := session.Session{
		Service: svc,
		Kind:    kind,
		Minutes: minutes,
		Prompt:  so.Prompt,
		Random:  so.Random,
		Notify:  cfg.Notify(),
		Plain:   so.Plain,
		In:      cmd.InOrStdin(),
	}
	err = s.Do(cmd.Context())
	if errors.Is(err, session.ErrDiscarded) {
		_, _ = fmt.Fprintln(color.Output, "Nothing saved.")
		return nil
	}
	return output.HandleError(err)
}
