package cli

import (
	"fmt"
	"os"

	"github.com/GKA777/pushups-app/internal/config"
	"github.com/GKA777/pushups-app/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var initCmd = LeafCommand{
	Use:   "init",
	Short: "Create ~/.pushups with a default configuration",
	StrFlags: []StringFlag{
		{Name: "backend", Usage: "storage backend (file or sqlite)", Default: config.BackendFile},
	},
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "overwrite an existing config.toml"},
		{Name: "yes", Short: "y", Usage: "skip confirmation prompts"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		backend, _ := cmd.Flags().GetString("backend")
		force, _ := cmd.Flags().GetBool("force")
		yes, _ := cmd.Flags().GetBool("yes")
		return runInit(cmd, homeDir, backend, force, detectShell(), ResolveConfirmFunc(yes))
	},
}.Build()

// runInit writes the config file, opens the chosen backend once so its
// files exist, and offers to install completions for shell. An empty shell
// skips the offer.
func runInit(cmd *cobra.Command, homeDir, backend string, force bool, shell string, confirm ConfirmFunc) error {
	w := cmd.OutOrStdout()

	if _, err := os.Stat(config.Path(homeDir)); err == nil && !force {
		return fmt.Errorf("pushups is already initialized at %s (use --force to overwrite)", config.Path(homeDir))
	}

	cfg := config.Default(homeDir)
	cfg.Backend = backend
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Write(homeDir, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("wrote %s", Primary(config.Path(homeDir)))))

	kv, err := storage.Open(commandContext(cmd), cfg)
	if err != nil {
		return err
	}
	if err := kv.Close(); err != nil {
		return err
	}
	logrus.WithField("backend", cfg.Backend).Debug("storage initialized")

	if shell != "" && !isCompletionInstalled(shell, homeDir) {
		if err := runCompletionInstall(cmd, shell, homeDir, confirm); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(w, Text("pushups initialized successfully"))
	return nil
}
