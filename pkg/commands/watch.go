package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report when another process changes the journal.",
		Example: `
storyjournal watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, kv, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{Store: kv}
			return output.HandleError(w.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
