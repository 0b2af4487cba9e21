package calendar

import (
	"fmt"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
)

const (
	// Weeks is the number of rows in a grid.
	Weeks = 6
	// Cells is the fixed number of cells in a grid.
	Cells = Weeks * 7
)

// Cell is one day in the grid. Cells outside the shown month have InMonth
// false and are rendered muted.
type Cell struct {
	Date    time.Time
	Key     string
	Day     int
	InMonth bool
}

// Grid is a month laid out as six Sunday-first weeks.
type Grid struct {
	Year  int
	Month time.Month
	Cells [Cells]Cell
}

// Month builds the grid for year/month. The first row starts on the Sunday
// on or before the 1st, so leading cells belong to the previous month and
// trailing cells to the next.
func Month(year int, month time.Month) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	g := Grid{Year: first.Year(), Month: first.Month()}
	for i := range g.Cells {
		d := start.AddDate(0, 0, i)
		g.Cells[i] = Cell{
			Date:    d,
			Key:     day.Key(d),
			Day:     d.Day(),
			InMonth: d.Month() == g.Month,
		}
	}
	return g
}

// Label returns the month heading, e.g. "February 2026".
func (g Grid) Label() string {
	return fmt.Sprintf("%s %d", g.Month, g.Year)
}

// Week returns the seven cells of row w (0-based).
func (g Grid) Week(w int) []Cell {
	return g.Cells[w*7 : w*7+7]
}

// Index returns the position of key in the grid, or -1.
func (g Grid) Index(key string) int {
	for i, c := range g.Cells {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// Shift returns the grid n months away from g.
func (g Grid) Shift(n int) Grid {
	t := time.Date(g.Year, g.Month+time.Month(n), 1, 0, 0, 0, 0, time.Local)
	return Month(t.Year(), t.Month())
}

// Weekdays are the column headings, Sunday first.
var Weekdays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
