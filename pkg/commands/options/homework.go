package options

import (
	"github.com/spf13/cobra"
)

// HomeworkOptions carries the optional parts of a homework-for-life entry.
type HomeworkOptions struct {
	Why   string
	Story string
	Show  bool
}

func AddHomeworkArgs(cmd *cobra.Command, o *HomeworkOptions) {
	cmd.Flags().StringVarP(&o.Why, "why", "w", "",
		"Why the moment mattered.")
	cmd.Flags().StringVarP(&o.Story, "story", "s", "",
		"The moment told as a short story.")
	cmd.Flags().BoolVar(&o.Show, "today", false,
		"Show today's entry instead of writing one.")
}
