package commands

import (
	"strings"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/prompts"
	"tableflip.dev/storyjournal/pkg/record"
)

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func randomPrompt() string {
	return prompts.Random("", nil)
}

// selected resolves a collection flag to the kinds to aggregate; nil means
// every collection.
func selected(co *options.CollectionOptions) ([]record.Kind, error) {
	if co.Collection == "" {
		return nil, nil
	}
	return co.Kinds()
}
