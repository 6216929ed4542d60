package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/record"
	"tableflip.dev/storyjournal/pkg/runner/backup"
)

func addExport(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	path := ""

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write a backup of the whole journal.",
		Long: options.Wrap80(`Export every collection to story-journal-backup-<date>.json in the
current directory, or to the given file; "-" writes to stdout. With
--collection only that collection is written, as a bare array.`),
		Example: `
storyjournal export
storyjournal export ~/backups/journal.json
storyjournal export -c entries - > entries.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				path = args[0]
			}
			var kind record.Kind
			if co.Collection != "" {
				k, err := record.ParseKind(co.Collection)
				if err != nil {
					return output.HandleError(err)
				}
				kind = k
			}
			_, kv, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			e := backup.Export{Store: kv, Kind: kind, Path: path, Dir: "."}
			return output.HandleError(e.Do(cmd.Context()))
		},
	}
	options.AddCollectionArgs(cmd, co, "")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a backup into the journal.",
		Long: options.Wrap80(`Import a backup written by export, or a bare array of journal entries.
Records already in the journal, matched by id, are kept; only new ones are
added. "-" reads from stdin. A file that is not a backup changes nothing.`),
		Example: `
storyjournal import story-journal-backup-2026-10-01.json
cat old.json | storyjournal import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, kv, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			i := backup.Import{Store: kv, Path: args[0], In: cmd.InOrStdin()}
			return output.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
