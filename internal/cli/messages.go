// Package cli — messages.go implements the "easyconsole-demo messages"
// command, which prints the default message catalog as a YAML bundle.
package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ghostix/easyconsole/messages"
)

// NewMessagesCommand creates the "messages" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewMessagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "messages",
		Short: "Print the default message catalog as a YAML bundle",
		Long: `Print the stock Spanish message catalog as YAML on stdout.

The output is a complete bundle: redirect it to a file, reword or
translate any subset of the strings, and point a profile's
messagesPath at the file to run the demo with it. Fields removed
from the file keep their defaults.

Example:
  easyconsole-demo messages > mensajes.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(messages.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
