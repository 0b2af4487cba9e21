package cli

import (
	"fmt"
	"os"

	"github.com/GKA777/pushups-app/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage configuration (" + "~/.pushups/config.toml)",
	Subcommands: []*cobra.Command{
		configGetCmd,
		configSetCmd,
		configResetCmd,
		configPathCmd,
	},
}.Build()

var configPathCmd = LeafCommand{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.Path(homeDir))
		return nil
	},
}.Build()

var configResetCmd = LeafCommand{
	Use:   "reset",
	Short: "Restore the default configuration",
	Args:  cobra.NoArgs,
	BoolFlags: []BoolFlag{
		{Name: "yes", Short: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runConfigReset(cmd, homeDir, ResolveConfirmFunc(yes))
	},
}.Build()

func runConfigReset(cmd *cobra.Command, homeDir string, confirm ConfirmFunc) error {
	ok, err := confirm("Restore the default configuration? The log itself is not touched.")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := config.Write(homeDir, config.Default(homeDir)); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text("configuration reset to defaults"))
	return nil
}
