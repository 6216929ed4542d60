package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about collections and where they are stored.",
		Example: `
storyjournal info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, kv, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			s := info.Info{
				Config: cfg,
				Store:  kv,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
