package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/report"
	"github.com/spf13/cobra"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show today, the current streak and this month's totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runStatus(cmd, homeDir, time.Now)
	},
}.Build()

func runStatus(cmd *cobra.Command, homeDir string, nowFunc func() time.Time) error {
	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	now := nowFunc().In(time.Local)
	today := a.book.Get(day.Key(now))
	w := cmd.OutOrStdout()

	if today != nil && today.Off {
		_, _ = fmt.Fprintf(w, "%s   %s\n", Silent("Today:"), Off(day.OffLine))
	} else {
		_, _ = fmt.Fprintf(w, "%s   %s  %s  %s\n",
			Silent("Today:"),
			Text(day.Summary(today)),
			Silent("·"),
			Primary(day.Line(today)),
		)
	}

	streak := report.Streak(a.book, now)
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Streak:"), Text(fmt.Sprintf("%d %s", streak, pluralDays(streak))))

	totals := day.MonthTotals(a.book, now.Year(), now.Month())
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent(now.Format("Jan 2006")+":"), Text(totals.String()))
	return nil
}

func pluralDays(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
