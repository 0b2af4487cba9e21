package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/spf13/cobra"
)

type pushOp int

const (
	pushSet pushOp = iota
	pushAdd
	pushSub
)

var pushCmd = GroupCommand{
	Use:   "push",
	Short: fmt.Sprintf("Log push-up sets (%d reps each)", day.RepsPerSet),
	Subcommands: []*cobra.Command{
		pushSetCmd,
		pushAddCmd,
		pushSubCmd,
	},
}.Build()

var pushSetCmd = LeafCommand{
	Use:     "set N [DATE]",
	Short:   "Set the number of push-up sets for a day",
	Example: "  pushups push set 4\n  pushups push set 3 yesterday",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runPush(cmd, homeDir, pushSet, args[0], argOr(args, 1, ""), time.Now)
	},
}.Build()

var pushAddCmd = newPushStepCmd("add", "Add push-up sets to a day", pushAdd)

var pushSubCmd = newPushStepCmd("sub", "Remove push-up sets from a day (never below zero)", pushSub)

func newPushStepCmd(use, short string, op pushOp) *cobra.Command {
	return LeafCommand{
		Use:   use + " [N]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		StrFlags: []StringFlag{
			{Name: "date", Short: "d", Usage: "day to edit (default: today)"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return err
			}
			dateFlag, _ := cmd.Flags().GetString("date")
			return runPush(cmd, homeDir, op, argOr(args, 0, "1"), dateFlag, time.Now)
		},
	}.Build()
}

func runPush(cmd *cobra.Command, homeDir string, op pushOp, countArg, dateArg string, nowFn func() time.Time) error {
	n, err := strconv.Atoi(countArg)
	if err != nil {
		return fmt.Errorf("invalid set count %q (expected a whole number)", countArg)
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

	switch op {
	case pushSet:
		a.book.SetPushSets(key, n)
	case pushAdd:
		a.book.AddPushSets(key, n)
	case pushSub:
		a.book.AddPushSets(key, -n)
	}
	if err := a.save(cmd); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), dayStatus(d, a.book.Get(key)))
	return nil
}
