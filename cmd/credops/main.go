package main

import (
	"fmt"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/systmms/credops/cmd/credops/commands"
	"github.com/systmms/credops/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Wipe every memguard enclave (sealed state snapshots) on exit.
	defer memguard.Purge()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		memguard.Purge()
		os.Exit(1)
	}
}

func run() error {
	var (
		noColor bool
		debug   bool
	)

	rt := &commands.Runtime{}

	rootCmd := &cobra.Command{
		Use:   "credops",
		Short: "Declarative htpasswd credential management",
		Long: `credops maintains a username:hash credential document from a declared
list of entries. Unchanged entries keep their hashes across updates;
entries without a password get a generated one.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rt.Logger = logging.New(debug, noColor)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewCreateCommand(rt),
		commands.NewDiffCommand(rt),
		commands.NewUpdateCommand(rt),
		commands.NewDeleteCommand(rt),
		commands.NewCompletionCommand(rt),
	)

	return rootCmd.Execute()
}
