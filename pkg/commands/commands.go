// Package commands wires the storyjournal CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/storyjournal/pkg/app"
	"tableflip.dev/storyjournal/pkg/commands/options"
	"tableflip.dev/storyjournal/pkg/logger"
	"tableflip.dev/storyjournal/pkg/store"
)

var (
	output = &options.OutputOptions{}
	debug  bool

	// Set by the linker.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// New builds the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storyjournal",
		Short: options.Wrap80("A story journal on the command line: daily writing practices kept in a local store."),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Piped(cmd) {
				return cmd.Help()
			}
			return PromptNext(cmd, args)
		},
		SilenceErrors: false,
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log at debug level and echo logs to stderr.")
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addDelete(topLevel)
	addPrompt(topLevel)
	addRespond(topLevel)
	addMorning(topLevel)
	addSprint(topLevel)
	addHomework(topLevel)
	addReceipt(topLevel)
	addStreak(topLevel)
	addCalendar(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addPractices(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}

var cfg store.Config

// setup loads the configuration and starts logging. It runs before every
// command.
func setup() error {
	if cfg != nil {
		return nil
	}
	c, err := store.LoadConfig()
	if err != nil {
		return err
	}
	cfg = c
	return logger.Init(logger.Config{
		Debug:  debug || c.Debug(),
		LogDir: store.LogDir(c),
	})
}

// openJournal opens the configured store. The returned func closes it.
func openJournal() (*app.Service, store.KV, func(), error) {
	if err := setup(); err != nil {
		return nil, nil, nil, err
	}
	kv, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open journal: %w", err)
	}
	closer := func() {
		if err := store.Close(kv); err != nil {
			logger.Warn("close journal", "error", err)
		}
	}
	return &app.Service{Store: kv}, kv, closer, nil
}
