package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a record permanently.",
		Example: `
storyjournal delete 0190c3a2-7b1e-7c4d-9a51-3f0e2b6d8c11
storyjournal delete --yes 1718000000000
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			r := remove.Remove{
				ID:      args[0],
				Yes:     co.Yes,
				Service: svc,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
