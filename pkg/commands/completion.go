package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/record"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish]",
		Short:     "Generates shell completion scripts",
		ValidArgs: []string{"bash", "zsh", "fish"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		Long: `To load completion run

. <(storyjournal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(storyjournal completion)
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}
			switch shell {
			case "zsh":
				return topLevel.GenZshCompletion(os.Stdout)
			case "fish":
				return topLevel.GenFishCompletion(os.Stdout, true)
			default:
				return topLevel.GenBashCompletionV2(os.Stdout, true)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

func collectionCompletions() []string {
	out := make([]string, 0, len(record.Kinds()))
	for _, k := range record.Kinds() {
		out = append(out, string(k))
	}
	return out
}
