// Package cli implements the cobra-based commands for the easyconsole
// demo binary.
//
// The "run" command starts the interactive session; "messages" prints
// the default catalog as an editable YAML bundle. This file defines the
// root command that parents them and translates errors into process
// exit codes.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghostix/easyconsole/internal/model"
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// The root itself does nothing; the subcommands carry the behavior.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easyconsole-demo",
		Short: "Interactive console-menu demo",
		Long: `easyconsole-demo shows the easyconsole menu library in action: an
address book and a calculator exposed as numbered console menus, with
automatic parameter collection for every operation.

Sessions are customizable through a JSONC profile and YAML message
bundles; see the run and messages commands.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewMessagesCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit code; any other error exits
// with the general code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes "Error: <message>" to stderr, appending the
// underlying cause when present. Stdout stays reserved for the menus.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
