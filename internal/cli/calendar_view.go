package cli

import (
	"fmt"
	"strings"

	"github.com/GKA777/pushups-app/internal/day"
)

const calendarHelp = "←/→/↑/↓ move · [/] month · t today · o off · +/- set · x clear · c copy · q quit"

func (m calendarModel) View() string {
	var b strings.Builder

	b.WriteString(renderMonth(m.grid, m.book, m.selectedKey(), m.today))
	b.WriteString("\n")

	r := m.book.Get(m.selectedKey())
	b.WriteString(Primary(m.selected.Format(dayHeadingLayout)))
	b.WriteString("\n")
	if r != nil && r.Off {
		b.WriteString(Off(day.OffLine))
	} else {
		b.WriteString(Text(day.Summary(r)))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Silent("Line:"), Primary(day.Line(r))))
	if r != nil && r.Notes != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Silent("Notes:"), Text(firstLine(r.Notes))))
	}
	b.WriteString("\n")

	totals := day.MonthTotals(m.book, m.grid.Year, m.grid.Month)
	b.WriteString(fmt.Sprintf("%s %s\n", Silent("Month:"), Text(totals.String())))
	b.WriteString("\n")

	if m.mode == modeConfirmClear {
		b.WriteString(Warning(fmt.Sprintf("Clear %s? (push-ups, hangs, notes and off flag) [y/N]", m.selected.Format(dayShortLayout))))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(Silent(calendarHelp))
	b.WriteString("\n")
	if m.footerMsg != "" {
		b.WriteString(m.footerMsg)
		b.WriteString("\n")
	}
	return b.String()
}
