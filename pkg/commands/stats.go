package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Counts, words and streaks per practice.",
		Example: `
storyjournal stats
storyjournal stats --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := stats.Stats{JSON: output.JSON, Service: svc}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
