package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/spf13/cobra"
)

var showCmd = LeafCommand{
	Use:     "show [DATE]",
	Short:   "Show what was logged on a day (default: today)",
	Example: "  pushups show\n  pushups show yesterday\n  pushups show 2026-02-01",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runShow(cmd, homeDir, argOr(args, 0, ""), time.Now)
	},
}.Build()

func runShow(cmd *cobra.Command, homeDir, dateArg string, nowFn func() time.Time) error {
	key, d, err := resolveDay(dateArg, nowFn())
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	printDay(cmd.OutOrStdout(), d, a.book.EnsureDay(key))
	return nil
}

// printDay writes the full view of a day: heading, summary, log line,
// numbered hangs and notes.
func printDay(w io.Writer, d time.Time, r *day.Record) {
	_, _ = fmt.Fprintf(w, "%s\n", Primary(d.Format(dayHeadingLayout)))

	if r.Off {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Summary:"), Off(day.OffLine))
	} else {
		_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Summary:"), Text(day.Summary(r)))
	}
	_, _ = fmt.Fprintf(w, "%s     %s\n", Silent("Line:"), Primary(day.Line(r)))

	_, _ = fmt.Fprintln(w)
	if len(r.Hangs) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("No hangs logged for this day."))
	} else {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("Hangs:"))
		for i, h := range r.Hangs {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, Text(day.HangToken(h)))
		}
	}

	if r.Notes != "" {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s\n%s\n", Silent("Notes:"), Text(r.Notes))
	}
}
