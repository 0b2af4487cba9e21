package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/spf13/cobra"
)

var lineCmd = LeafCommand{
	Use:   "line [DATE]",
	Short: "Print a day's log line, e.g. \"PPP H40 H30f\"",
	Args:  cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "copy", Short: "c", Usage: "also copy the line to the clipboard"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		copyFlag, _ := cmd.Flags().GetBool("copy")
		var copyFn CopyFunc
		if copyFlag {
			copyFn = copyToClipboard
		}
		return runLine(cmd, homeDir, argOr(args, 0, ""), copyFn, time.Now)
	},
}.Build()

// runLine prints the line and, when copyFn is set, copies it. A failed
// copy still prints the line so it can be copied by hand.
func runLine(cmd *cobra.Command, homeDir, dateArg string, copyFn CopyFunc, nowFn func() time.Time) error {
	key, _, err := resolveDay(dateArg, nowFn())
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	line := day.Line(a.book.Get(key))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)

	if copyFn == nil {
		return nil
	}
	if err := copyFn(line); err != nil {
		return asClipboardError(err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", Info("Copied!"))
	return nil
}
