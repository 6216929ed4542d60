package options

import (
	"github.com/spf13/cobra"
)

// SessionOptions configures a timed writing session.
type SessionOptions struct {
	Minutes int
	Prompt  string
	Random  bool
	Plain   bool
}

func AddSessionArgs(cmd *cobra.Command, o *SessionOptions, minutes int) {
	cmd.Flags().IntVarP(&o.Minutes, "minutes", "m", minutes,
		"Length of the session in minutes; 0 uses the configured default.")
	cmd.Flags().BoolVar(&o.Plain, "plain", false,
		Wrap80("Read the text from stdin when the timer ends instead of opening the editor."))
}

func AddPromptArgs(cmd *cobra.Command, o *SessionOptions) {
	cmd.Flags().StringVarP(&o.Prompt, "prompt", "p", "",
		"Write to this prompt.")
	cmd.Flags().BoolVarP(&o.Random, "random", "r", false,
		"Write to a random prompt from the deck.")
}
