// Package cli — run.go implements the "easyconsole-demo run" command,
// the interactive session itself.
//
// The command resolves a session profile (explicit flag, working
// directory, or defaults), configures logging, assembles the demo
// menus, and hands stdin/stdout to the root menu until the exit
// option is chosen.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ghostix/easyconsole/internal/config"
	"github.com/ghostix/easyconsole/internal/model"
	"github.com/ghostix/easyconsole/logger"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	profile string // --profile: explicit profile path
}

// NewRunCommand creates the "run" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive demo session",
		Long: `Start the interactive console session: an address book and a
calculator behind a root menu.

Without --profile, the working directory is searched for
easyconsole.jsonc or easyconsole.json; when neither exists the
built-in defaults apply.

Examples:
  easyconsole-demo run
  easyconsole-demo run --profile kiosko.jsonc
  EASYCONSOLE_LOG=debug easyconsole-demo run`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so errors reach the Execute
		// error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(flags)
		},
	}

	cmd.Flags().StringVar(&flags.profile, "profile", "", "Path to a JSONC session profile")

	return cmd
}

// runSession resolves the profile, configures logging, builds the demo
// menus, and blocks on the root menu until the exit selection.
func runSession(flags *runFlags) error {
	profile, err := resolveProfile(flags.profile)
	if err != nil {
		return err
	}

	logger.Configure(profile.Level(), profile.PrettyLog)

	catalog, err := profile.Catalog()
	if err != nil {
		return err
	}

	session, err := NewSession(profile, catalog, os.Stdout)
	if err != nil {
		return err
	}

	// The root menu loops internally; an error here means the input
	// stream died under it, not that an operation failed.
	if _, err := session.Run(os.Stdin); err != nil {
		return model.WrapCLIError(model.ExitSessionError,
			"interactive session aborted", err)
	}
	return nil
}

// resolveProfile loads the explicit profile when a path is given,
// otherwise the first one found in the working directory, otherwise
// the defaults. Only the explicit path is required to exist.
func resolveProfile(path string) (*config.Profile, error) {
	if path != "" {
		return config.Load(path)
	}
	if found, ok := config.Find("."); ok {
		return config.Load(found)
	}
	return config.Default(), nil
}
