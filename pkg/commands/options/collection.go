// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/record"
)

// CollectionOptions captures collection selection flags for commands.
type CollectionOptions struct {
	Collection string
	All        bool
}

// AddCollectionArgs wires the collection flag on the provided command.
func AddCollectionArgs(cmd *cobra.Command, o *CollectionOptions, def string) {
	cmd.Flags().StringVarP(&o.Collection, "collection", "c", def,
		"Specify the collection, see: storyjournal practices.")
	_ = cmd.RegisterFlagCompletionFunc("collection", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return kindNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// AddAllCollectionsArg registers a flag that operates on all collections.
func AddAllCollectionsArg(cmd *cobra.Command, o *CollectionOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Specify all collections.")
}

// Kinds resolves the selection; --all or an empty collection means every
// collection.
func (o *CollectionOptions) Kinds() ([]record.Kind, error) {
	if o.All || o.Collection == "" {
		return record.Kinds(), nil
	}
	k, err := record.ParseKind(o.Collection)
	if err != nil {
		return nil, err
	}
	return []record.Kind{k}, nil
}

func kindNames() []string {
	var out []string
	for _, k := range record.Kinds() {
		out = append(out, string(k))
	}
	return out
}
