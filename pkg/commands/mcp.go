package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server on stdio that exposes the journal's collections,
records, streaks and entry writing to an MCP client.`,
		Example: `
storyjournal mcp
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return err
			}
			defer done()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := mcp.Runner{
				Service: svc,
				Name:    "storyjournal",
				Version: version,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			return runner.Do(ctx)
		},
	}

	topLevel.AddCommand(cmd)
}
