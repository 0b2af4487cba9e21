package cli

import (
	"github.com/GKA777/pushups-app/internal/day"
	tea "github.com/charmbracelet/bubbletea"
)

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.mode == modeConfirmClear {
		return m.updateConfirmClear(key)
	}

	m.footerMsg = ""
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m = m.selectDay(m.selected.AddDate(0, 0, -1))
	case "right", "l":
		m = m.selectDay(m.selected.AddDate(0, 0, 1))
	case "up", "k":
		m = m.selectDay(m.selected.AddDate(0, 0, -7))
	case "down", "j":
		m = m.selectDay(m.selected.AddDate(0, 0, 7))
	case "[", "pgup":
		m = m.shiftMonth(-1)
	case "]", "pgdown":
		m = m.shiftMonth(1)
	case "t":
		today, _ := day.ParseKey(m.today)
		m = m.selectDay(today)
	case "o":
		if m.book.ToggleOff(m.selectedKey()) {
			m = m.commit("marked as a rest day")
		} else {
			m = m.commit("no longer a rest day")
		}
	case "+", "=", "p":
		m.book.AddPushSets(m.selectedKey(), 1)
		m = m.commit("")
	case "-", "_":
		m.book.AddPushSets(m.selectedKey(), -1)
		m = m.commit("")
	case "x", "delete":
		if m.book.Get(m.selectedKey()) != nil {
			m.mode = modeConfirmClear
		}
	case "c":
		m = m.copyLine()
	}
	return m, nil
}

func (m calendarModel) updateConfirmClear(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y", "Y":
		m.book.Delete(m.selectedKey())
		m.mode = modeBrowse
		m = m.commit("day cleared")
	case "ctrl+c":
		return m, tea.Quit
	default:
		m.mode = modeBrowse
		m.footerMsg = ""
	}
	return m, nil
}

func (m calendarModel) copyLine() calendarModel {
	if err := m.copyFn(day.Line(m.book.Get(m.selectedKey()))); err != nil {
		m.footerMsg = Error(asClipboardError(err).Error())
		return m
	}
	m.footerMsg = Info("Copied!")
	return m
}
