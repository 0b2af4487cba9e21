package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var offCmd = LeafCommand{
	Use:   "off [DATE]",
	Short: "Toggle a rest day; logged push-ups, hangs and notes are kept",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runOff(cmd, homeDir, argOr(args, 0, ""), time.Now)
	},
}.Build()

func runOff(cmd *cobra.Command, homeDir, dateArg string, nowFn func() time.Time) error {
	key, d, err := resolveDay(dateArg, nowFn())
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	off := a.book.ToggleOff(key)
	if err := a.save(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if off {
		_, _ = fmt.Fprintf(w, "%s %s\n", Primary(d.Format(dayShortLayout)), Text("marked as a rest day"))
	} else {
		_, _ = fmt.Fprintf(w, "%s %s\n", Primary(d.Format(dayShortLayout)), Text("is no longer a rest day"))
	}
	_, _ = fmt.Fprintln(w, dayStatus(d, a.book.Get(key)))
	return nil
}
