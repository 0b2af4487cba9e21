package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/spf13/cobra"
)

var hangCmd = GroupCommand{
	Use:   "hang",
	Short: "Log timed hangs",
	Subcommands: []*cobra.Command{
		hangAddCmd,
		hangRemoveCmd,
	},
}.Build()

var hangAddCmd = LeafCommand{
	Use:     "add SECONDS",
	Short:   "Add a hang to a day",
	Example: "  pushups hang add 40\n  pushups hang add 1m10s --feet\n  pushups hang add 30 --date yesterday",
	Args:    cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "feet", Short: "f", Usage: "feet were touching the ground"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Short: "d", Usage: "day to edit (default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		feet, _ := cmd.Flags().GetBool("feet")
		dateFlag, _ := cmd.Flags().GetString("date")
		return runHangAdd(cmd, homeDir, args[0], feet, dateFlag, time.Now)
	},
}.Build()

var hangRemoveCmd = LeafCommand{
	Use:     "rm INDEX",
	Aliases: []string{"remove"},
	Short:   "Remove a hang by its position in \"pushups show\"",
	Args:    cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "date", Short: "d", Usage: "day to edit (default: today)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		dateFlag, _ := cmd.Flags().GetString("date")
		return runHangRemove(cmd, homeDir, args[0], dateFlag, time.Now)
	},
}.Build()

// parseSeconds accepts a plain number of seconds or a Go duration like
// "1m10s".
func parseSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid hang duration %q (expected seconds, e.g. 40 or 1m10s)", s)
	}
	return int(d / time.Second), nil
}

// runHangAdd ignores non-positive durations: a warning is printed and
// nothing is saved.
func runHangAdd(cmd *cobra.Command, homeDir, secondsArg string, feet bool, dateArg string, nowFn func() time.Time) error {
	seconds, err := parseSeconds(secondsArg)
	if err != nil {
		return err
	}

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
	if err := a.book.AddHang(key, seconds, feet); err != nil {
		_, _ = fmt.Fprintf(w, "%s\n", Warning(err.Error()+"; nothing logged"))
		return nil
	}
	if err := a.save(cmd); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, dayStatus(d, a.book.Get(key)))
	return nil
}

func runHangRemove(cmd *cobra.Command, homeDir, indexArg, dateArg string, nowFn func() time.Time) error {
	idx, err := strconv.Atoi(indexArg)
	if err != nil {
		return fmt.Errorf("invalid hang position %q (expected a number from \"pushups show\")", indexArg)
	}

	key, d, err := resolveDay(dateArg, nowFn())
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	removed, err := a.book.RemoveHang(key, idx-1)
	if err != nil {
		return err
	}
	if err := a.save(cmd); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Text("removed"), Primary(day.HangToken(removed)))
	_, _ = fmt.Fprintln(w, dayStatus(d, a.book.Get(key)))
	return nil
}
