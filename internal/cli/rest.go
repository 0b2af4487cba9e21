package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/dates"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = GroupCommand{
	Use:   "rest",
	Short: "Plan rest days",
	Subcommands: []*cobra.Command{
		restApplyCmd,
	},
}.Build()

var restApplyCmd = LeafCommand{
	Use:   "apply",
	Short: "Mark every day matching a rest rule in a month as off",
	Example: "  pushups rest apply --rule \"every sunday\"\n" +
		"  pushups rest apply --month next month\n" +
		"  pushups rest apply --rule \"FREQ=WEEKLY;BYDAY=WE,SU\" --dry-run",
	Args: cobra.NoArgs,
	StrFlags: []StringFlag{
		{Name: "month", Short: "m", Usage: "month to plan (default: this month)"},
		{Name: "rule", Short: "r", Usage: "recurrence, e.g. \"every sunday\" (default: rest_rule from config)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "force", Usage: "also mark days that already have push-ups or hangs"},
		{Name: "dry-run", Usage: "show what would be marked without saving"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		monthFlag, _ := cmd.Flags().GetString("month")
		ruleFlag, _ := cmd.Flags().GetString("rule")
		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return runRestApply(cmd, homeDir, monthFlag, ruleFlag, force, dryRun, time.Now)
	},
}.Build()

// runRestApply only ever sets the off flag; logged data is never cleared.
// Days with push-ups or hangs are skipped unless force is set.
func runRestApply(
	cmd *cobra.Command,
	homeDir, monthFlag, ruleFlag string,
	force, dryRun bool,
	nowFn func() time.Time,
) error {
	year, month, err := dates.ParseMonth(monthFlag, nowFn().In(time.Local))
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	rule := ruleFlag
	if rule == "" {
		rule = a.cfg.RestRule
	}
	if rule == "" {
		return fmt.Errorf("no rest rule given; pass --rule or run: pushups config set rest_rule \"every sunday\"")
	}

	rrule, err := dates.ParseRecurrence(rule)
	if err != nil {
		return err
	}
	from, to := dates.MonthRange(year, month, time.Local)
	matches, err := dates.Expand(rrule, from, to)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	marked := 0
	for _, d := range matches {
		key := day.Key(d)
		r := a.book.Get(key)
		switch {
		case r != nil && r.Off:
			continue
		case r.Active() && !force:
			_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(d.Format(dayShortLayout)), Warning("skipped, already logged "+day.Line(r)))
			continue
		}

		if !dryRun {
			a.book.SetOff(key, true)
		}
		marked++
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(d.Format(dayShortLayout)), Off(day.OffLine))
	}

	label := fmt.Sprintf("%s %d", month, year)
	if dryRun {
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("would mark %d rest %s in %s", marked, pluralDays(marked), label)))
		return nil
	}
	if marked > 0 {
		if err := a.save(cmd); err != nil {
			return err
		}
	}
	logrus.WithFields(logrus.Fields{"rule": rule, "month": label, "marked": marked}).Info("rest days applied")

	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("marked %d rest %s in %s", marked, pluralDays(marked), label)))
	return nil
}
