package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var clearCmd = LeafCommand{
	Use:   "clear [DATE]",
	Short: "Delete everything logged on a day",
	Args:  cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Short: "y", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")
		return runClear(cmd, homeDir, argOr(args, 0, ""), ResolveConfirmFunc(yes), time.Now)
	},
}.Build()

// runClear removes the day's record entirely, unlike marking it off.
func runClear(cmd *cobra.Command, homeDir, dateArg string, confirm ConfirmFunc, nowFn func() time.Time) error {
	key, d, err := resolveDay(dateArg, nowFn())
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	w := cmd.OutOrStdout()
	if a.book.Get(key) == nil {
		_, _ = fmt.Fprintf(w, "%s %s\n", Text("nothing logged on"), Primary(d.Format(dayShortLayout)))
		return nil
	}

	ok, err := confirm(fmt.Sprintf("Clear %s? (push-ups, hangs, notes and off flag)", d.Format(dayShortLayout)))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	a.book.Delete(key)
	if err := a.save(cmd); err != nil {
		return err
	}
	logrus.WithField("day", key).Info("day cleared")

	_, _ = fmt.Fprintf(w, "%s %s\n", Text("cleared"), Primary(d.Format(dayShortLayout)))
	return nil
}
