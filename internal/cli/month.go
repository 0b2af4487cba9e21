package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/GKA777/pushups-app/internal/calendar"
	"github.com/GKA777/pushups-app/internal/dates"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/report"
	"github.com/spf13/cobra"
)

var monthCmd = LeafCommand{
	Use:     "month [MONTH]",
	Short:   "Show a month calendar with totals",
	Example: "  pushups month\n  pushups month last month\n  pushups month 2026-02 --export pdf",
	StrFlags: []StringFlag{
		{Name: "export", Usage: "export format (pdf)"},
		{Name: "out", Short: "o", Usage: "output file for --export (default: pushups-YYYY-MM.pdf)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		exportFlag, _ := cmd.Flags().GetString("export")
		outFlag, _ := cmd.Flags().GetString("out")
		return runMonth(cmd, homeDir, strings.Join(args, " "), exportFlag, outFlag, time.Now)
	},
}.Build()

func runMonth(cmd *cobra.Command, homeDir, monthArg, exportFlag, outFlag string, nowFn func() time.Time) error {
	now := nowFn().In(time.Local)
	year, month, err := dates.ParseMonth(monthArg, now)
	if err != nil {
		return err
	}

	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	data := report.Month(a.book, year, month)
	w := cmd.OutOrStdout()

	if exportFlag != "" {
		if exportFlag != "pdf" {
			return fmt.Errorf("unsupported export format %q (supported: pdf)", exportFlag)
		}
		if len(data.Rows) == 0 {
			_, _ = fmt.Fprintf(w, "Nothing logged in %s %d.\n", month, year)
			return nil
		}

		outputPath := outFlag
		if outputPath == "" {
			outputPath = fmt.Sprintf("pushups-%d-%02d.pdf", year, month)
		}
		if err := renderMonthPDF(data, outputPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "Exported %s %d to %s\n", month, year, outputPath)
		return nil
	}

	printMonth(w, a.book, data, "", day.Key(now))
	return nil
}

// printMonth writes the calendar grid, the logged days and the totals.
func printMonth(w io.Writer, b *day.Book, data report.Data, selected, today string) {
	_, _ = fmt.Fprint(w, renderMonth(calendar.Month(data.Year, data.Month), b, selected, today))
	_, _ = fmt.Fprintln(w)

	if len(data.Rows) == 0 {
		_, _ = fmt.Fprintf(w, "%s\n", Silent("Nothing logged this month."))
	} else {
		printRows(w, data.Rows)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Totals:"), Primary(data.Totals.String()))
}
