package cli

import (
	"fmt"
	"os"

	"github.com/GKA777/pushups-app/internal/config"
	"github.com/spf13/cobra"
)

var configGetCmd = LeafCommand{
	Use:   "get [KEY]",
	Short: "Show effective configuration values (after .env and environment overrides)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, homeDir, argOr(args, 0, ""))
	},
}.Build()

func init() {
	configGetCmd.ValidArgs = config.Keys()
}

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	if err := config.LoadDotEnv(homeDir); err != nil {
		return err
	}
	cfg, err := config.Read(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if key != "" {
		v, err := cfg.Get(key)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, v)
		return nil
	}

	for _, k := range config.Keys() {
		v, _ := cfg.Get(k)
		if v == "" {
			v = Silent("(unset)")
		}
		_, _ = fmt.Fprintf(w, "%s = %s\n", Primary(k), v)
	}
	return nil
}
