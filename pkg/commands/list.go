package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/runner/get"
)

func addList(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	io := &options.IDOptions{}
	limit := 0

	cmd := &cobra.Command{
		Use:     "list [collection]",
		Aliases: []string{"ls", "get"},
		Short:   "List records, newest first.",
		Long: options.Wrap80(`List the records of one collection, or of every collection that has
any. Collections are named as in: storyjournal practices.`),
		Example: `
storyjournal list
storyjournal list receipts --full
storyjournal list -c morningPages -n 5 --show-id
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return collectionCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				co.Collection = args[0]
			}
			kinds, err := co.Kinds()
			if err != nil {
				return output.HandleError(err)
			}
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			if output.JSON {
				all, err := svc.Records(cmd.Context(), kinds...)
				if err != nil {
					return output.HandleError(err)
				}
				if limit > 0 && len(all) > limit {
					all = all[:limit]
				}
				b, err := json.MarshalIndent(all, "", "  ")
				if err != nil {
					return output.HandleError(err)
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			g := get.Get{
				ShowID:  io.ShowID,
				Full:    io.Full,
				Kinds:   kinds,
				Limit:   limit,
				Service: svc,
			}
			return output.HandleError(g.Do(cmd.Context()))
		},
	}
	options.AddCollectionArgs(cmd, co, "")
	options.AddShowIDArgs(cmd, io)
	options.AddFullArgs(cmd, io)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many records per collection.")

	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record in full.",
		Example: `
storyjournal show 0190c3a2-7b1e-7c4d-9a51-3f0e2b6d8c11
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			if output.JSON {
				_, r, err := svc.Find(cmd.Context(), args[0])
				if err != nil {
					return output.HandleError(err)
				}
				b, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return output.HandleError(err)
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			s := get.Show{ID: args[0], Service: svc}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
