package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	Full   bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each record.")
}

func AddFullArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.Full, "full", false,
		"Print the whole text of each record instead of a preview.")
}
