package cli

import (
	"fmt"
	"os"

	"github.com/GKA777/pushups-app/internal/config"
	"github.com/GKA777/pushups-app/internal/dates"
	"github.com/spf13/cobra"
)

var configSetCmd = LeafCommand{
	Use:     "set KEY VALUE",
	Short:   "Change a value in config.toml",
	Example: "  pushups config set backend sqlite\n  pushups config set rest_rule \"every sunday\"",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

// runConfigSet edits the file itself, so environment overrides are not
// written back.
func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.ReadFile(homeDir)
	if err != nil {
		return err
	}

	if key == "rest_rule" && value != "" {
		if _, err := dates.ParseRecurrence(value); err != nil {
			return err
		}
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to %s", Primary(key), Primary(value))))
	return nil
}
