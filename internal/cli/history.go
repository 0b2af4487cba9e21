package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/report"
	"github.com/spf13/cobra"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show the most recent logged days, newest first",
	Args:  cobra.NoArgs,
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "maximum number of days to show (0 = all)", Default: 14},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return runHistory(cmd, homeDir, limit, time.Now)
	},
}.Build()

func runHistory(cmd *cobra.Command, homeDir string, limit int, nowFn func() time.Time) error {
	if limit < 0 {
		return fmt.Errorf("invalid --limit %d (expected 0 or more)", limit)
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	rows := report.Recent(a.book, nowFn(), limit)
	w := cmd.OutOrStdout()
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, Text("Nothing logged yet."))
		return nil
	}

	printRows(w, rows)
	return nil
}

// printRows writes one line per logged day: date, summary and log line,
// then the first line of any notes.
func printRows(w io.Writer, rows []report.Row) {
	for _, row := range rows {
		label := Silent(row.Date.Format(dayShortLayout))
		var body string
		switch {
		case row.Off:
			body = Off(day.OffLine)
		case row.Reps == 0 && row.Hangs == 0:
			body = Silent(day.EmptyLine)
		default:
			body = fmt.Sprintf("%s  %s", Text(row.Headline), Primary(row.Line))
		}
		if row.Notes != "" {
			body += "  " + Silent(firstLine(row.Notes))
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", padRight(label, 10), body)
	}
}

// firstLine returns s up to its first newline, marking anything cut.
func firstLine(s string) string {
	for i, c := range s {
		if c == '\n' {
			return s[:i] + " …"
		}
	}
	return s
}
