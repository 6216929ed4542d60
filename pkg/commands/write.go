package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	so := &options.SessionOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "write [text]",
		Short: "Write a journal entry.",
		Long: options.Wrap80(`Write a free journal entry, or a prompted one with --prompt or
--random. The text comes from the arguments, --file, or stdin.`),
		Example: `
storyjournal write "Walked the long way home and saw the heron again."
storyjournal write --title "The heron" --file heron.md
storyjournal write --random -i
echo "quiet day" | storyjournal write
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			w := write.Write{
				Service:     svc,
				Title:       co.Title,
				Prompt:      so.Prompt,
				Interactive: i.Interactive,
			}
			if so.Random && w.Prompt == "" {
				w.Prompt = randomPrompt()
			}
			if !i.Interactive {
				if w.Content, err = co.Content(cmd, args); err != nil {
					return output.HandleError(err)
				}
			}
			return output.HandleError(w.Do(cmd.Context()))
		},
	}
	options.AddTitleArgs(cmd, co)
	options.AddContentArgs(cmd, co)
	options.AddPromptArgs(cmd, so)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addRespond(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	so := &options.SessionOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "respond [text]",
		Short: "Answer a writing prompt.",
		Long: options.Wrap80(`Save a response to a prompt. Without --prompt a random prompt
from the deck is used; see: storyjournal prompt --all.`),
		Example: `
storyjournal respond -p "Describe a door you remember." "Green, and always sticking."
storyjournal respond -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			r := write.Respond{
				Service:     svc,
				Prompt:      so.Prompt,
				Interactive: i.Interactive,
			}
			if !i.Interactive {
				if r.Content, err = co.Content(cmd, args); err != nil {
					return output.HandleError(err)
				}
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddContentArgs(cmd, co)
	cmd.Flags().StringVarP(&so.Prompt, "prompt", "p", "", "The prompt being answered.")
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addReceipt(topLevel *cobra.Command) {
	co := &options.ContentOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "receipt [text]",
		Aliases: []string{"receipts"},
		Short:   "Write a story receipt of 100 words or fewer.",
		Example: `
storyjournal receipt "The bus driver waited for me. I ran. She smiled."
storyjournal receipt -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			r := write.Receipt{Service: svc, Interactive: i.Interactive}
			if !i.Interactive {
				if r.Content, err = co.Content(cmd, args); err != nil {
					return output.HandleError(err)
				}
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddContentArgs(cmd, co)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addHomework(topLevel *cobra.Command) {
	ho := &options.HomeworkOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:     "homework [moment]",
		Aliases: []string{"hfl"},
		Short:   "Record today's homework-for-life moment.",
		Long: options.Wrap80(`Homework for life keeps one moment per day. Writing again the same
day replaces that day's entry.`),
		Example: `
storyjournal homework "Dad laughed at his own joke before the punchline" --why "I have his laugh"
storyjournal homework --today
storyjournal homework -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, done, err := openJournal()
			if err != nil {
				return output.HandleError(err)
			}
			defer done()

			h := write.Homework{
				Service:     svc,
				Moment:      joinArgs(args),
				Why:         ho.Why,
				Story:       ho.Story,
				Show:        ho.Show,
				Interactive: i.Interactive,
			}
			return output.HandleError(h.Do(cmd.Context()))
		},
	}
	options.AddHomeworkArgs(cmd, ho)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addPrompt(topLevel *cobra.Command) {
	all := false
	exclude := ""

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Draw a random writing prompt.",
		Example: `
storyjournal prompt
storyjournal prompt --all
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := write.Prompt{All: all, Exclude: exclude}
			return output.HandleError(p.Do(cmd.Context()))
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Print the whole deck.")
	cmd.Flags().StringVar(&exclude, "not", "", "Never draw this prompt.")

	topLevel.AddCommand(cmd)
}
