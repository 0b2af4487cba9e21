package cli

import (
	"os"
	"time"

	"github.com/GKA777/pushups-app/internal/calendar"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/GKA777/pushups-app/internal/report"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var calendarCmd = LeafCommand{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Browse and edit the log in an interactive calendar",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runCalendar(cmd, homeDir, time.Now)
	},
}.Build()

func runCalendar(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	a, err := openApp(cmd, homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	now := nowFn().In(time.Local)
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print the static month
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		printMonth(out, a.book, report.Month(a.book, now.Year(), now.Month()), "", day.Key(now))
		return nil
	}

	m := newCalendarModel(a.book, now, func() error { return a.save(cmd) }, copyToClipboard)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err = p.Run()
	return err
}

// calendarMode is the current interaction mode of the calendar.
type calendarMode int

const (
	modeBrowse calendarMode = iota
	modeConfirmClear
)

type calendarModel struct {
	book     *day.Book
	grid     calendar.Grid
	selected time.Time
	today    string
	mode     calendarMode
	save     func() error
	copyFn   CopyFunc
	// footerMsg is shown under the help line until the next key press.
	footerMsg string
}

func newCalendarModel(b *day.Book, now time.Time, save func() error, copyFn CopyFunc) calendarModel {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	b.EnsureDay(day.Key(today))
	return calendarModel{
		book:     b,
		grid:     calendar.Month(today.Year(), today.Month()),
		selected: today,
		today:    day.Key(today),
		save:     save,
		copyFn:   copyFn,
	}
}

func (m calendarModel) Init() tea.Cmd {
	return nil
}

func (m calendarModel) selectedKey() string {
	return day.Key(m.selected)
}

// selectDay moves the selection and follows it across months. The day is
// ensured the way clicking a cell does.
func (m calendarModel) selectDay(d time.Time) calendarModel {
	m.selected = d
	if d.Year() != m.grid.Year || d.Month() != m.grid.Month {
		m.grid = calendar.Month(d.Year(), d.Month())
	}
	m.book.EnsureDay(day.Key(d))
	return m
}

// shiftMonth moves the view by n months, keeping the day of month where
// the target month allows it.
func (m calendarModel) shiftMonth(n int) calendarModel {
	g := m.grid.Shift(n)
	last := time.Date(g.Year, g.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
	d := min(m.selected.Day(), last)
	return m.selectDay(time.Date(g.Year, g.Month, d, 0, 0, 0, 0, time.Local))
}

// commit persists the book after an edit and reports failures in the footer.
func (m calendarModel) commit(msg string) calendarModel {
	if err := m.save(); err != nil {
		m.footerMsg = Error("save failed: " + err.Error())
		return m
	}
	m.footerMsg = msg
	return m
}
