package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/storage"
	"github.com/spf13/cobra"
)

var importCmd = LeafCommand{
	Use:   "import FILE",
	Short: "Replace the whole log with a JSON backup (- reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runImport(cmd, homeDir, args[0])
	},
}.Build()

// runImport replaces the log wholesale. Any read, parse or shape problem is
// returned as a *day.ImportError and the current log is kept.
func runImport(cmd *cobra.Command, homeDir, path string) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return &day.ImportError{Err: err}
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if err := storage.Import(commandContext(cmd), a.kv, a.book, r); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", Info("Import complete."), Silent(fmt.Sprintf("(%d days)", len(a.book.Days))))
	return nil
}
