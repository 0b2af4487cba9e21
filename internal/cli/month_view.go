package cli

import (
	"fmt"
	"strings"

	"github.com/GKA777/pushups-app/internal/calendar"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/charmbracelet/lipgloss"
)

const cellWidth = 10

// renderMonth draws the grid with each day's badge. selected and today are
// date keys and may be empty.
func renderMonth(g calendar.Grid, b *day.Book, selected, today string) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("--- %s ---", g.Label())))
	sb.WriteString("\n")

	for _, wd := range calendar.Weekdays {
		sb.WriteString(headerStyle.Render(padRight(wd, cellWidth)))
	}
	sb.WriteString("\n")

	for w := 0; w < calendar.Weeks; w++ {
		for _, c := range g.Week(w) {
			sb.WriteString(renderCell(c, b.Get(c.Key), c.Key == selected, c.Key == today))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(c calendar.Cell, r *day.Record, selected, today bool) string {
	style := lipgloss.NewStyle()
	switch {
	case !c.InMonth:
		style = silentStyle
	case r != nil && r.Off:
		style = offStyle
	case r.Active():
		style = activeStyle
	}
	if today {
		style = style.Bold(true).Underline(true)
	}
	if selected {
		style = style.Reverse(true)
	}

	label := fmt.Sprintf("%2d %s", c.Day, day.Badge(r))
	return style.Render(padRight(label, cellWidth-1)) + " "
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
