package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/runner/practices"
)

func addPractices(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "practices",
		Aliases: []string{"key", "collections"},
		Short:   "List the writing practices and their collections.",
		Example: `
storyjournal practices
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := practices.Practices{}
			return output.HandleError(p.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
