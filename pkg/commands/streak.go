package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Consecutive days with writing, ending today.",
		Example: `
storyjournal streak
storyjournal streak -c homework
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kinds, err := selected(co)
			if err != nil {
				return output.HandleError(err)
			}
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := streak.Streak{Kinds: kinds, Service: svc}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddCollectionArgs(cmd, co, "")

	topLevel.AddCommand(cmd)
}

func addCalendar(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Month calendar of the days you wrote.",
		Example: `
storyjournal calendar
storyjournal calendar --month 2026-02 -c morningPages
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			month, err := mo.GetMonth(now)
			if err != nil {
				return output.HandleError(err)
			}
			kinds, err := selected(co)
			if err != nil {
				return output.HandleError(err)
			}
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			c := streak.Calendar{Month: month, Today: now, Kinds: kinds, Service: svc}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}
	options.AddCollectionArgs(cmd, co, "")
	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
