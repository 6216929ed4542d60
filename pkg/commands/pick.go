package commands

import (
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

// practices offered by the picker, in the order shown.
var pickable = []string{"write", "respond", "sprint", "morning", "homework", "receipt", "list", "calendar", "stats"}

// PromptNext lets the user pick a practice and runs it interactively.
func PromptNext(cmd *cobra.Command, args []string) error {
	var subcommands []*cobra.Command
	for _, name := range pickable {
		if sub, _, err := cmd.Find([]string{name}); err == nil && sub != cmd {
			subcommands = append(subcommands, sub)
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "➜  {{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		sub := subcommands[index]
		name := strings.ReplaceAll(strings.ToLower(sub.Name()+sub.Short), " ", "")
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "What would you like to write",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    nopCloser{cmd.OutOrStdout()},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return err
	}

	next := subcommands[i]
	if f := next.Flags().Lookup("interactive"); f != nil {
		_ = f.Value.Set("true")
	}
	next.SetContext(cmd.Context())
	return next.RunE(next, args)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
