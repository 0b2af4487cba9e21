package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthFebruary2026(t *testing.T) {
	// Feb 1 2026 is a Sunday, so the grid starts on the 1st
	g := Month(2026, time.February)

	assert.Equal(t, "February 2026", g.Label())
	assert.Len(t, g.Cells, 42)

	first := g.Cells[0]
	assert.Equal(t, "2026-02-01", first.Key)
	assert.Equal(t, 1, first.Day)
	assert.True(t, first.InMonth)

	last := g.Cells[27]
	assert.Equal(t, "2026-02-28", last.Key)
	assert.True(t, last.InMonth)

	trailing := g.Cells[28]
	assert.Equal(t, "2026-03-01", trailing.Key)
	assert.False(t, trailing.InMonth)
	assert.Equal(t, "2026-03-14", g.Cells[41].Key)
}

func TestMonthLeadingCells(t *testing.T) {
	// Jan 1 2026 is a Thursday: four cells from December lead
	g := Month(2026, time.January)

	for i := 0; i < 4; i++ {
		assert.False(t, g.Cells[i].InMonth, "cell %d", i)
	}
	assert.Equal(t, "2025-12-28", g.Cells[0].Key)
	assert.Equal(t, "2026-01-01", g.Cells[4].Key)
	assert.Equal(t, time.Thursday, g.Cells[4].Date.Weekday())
}

func TestMonthColumnsAreWeekdays(t *testing.T) {
	g := Month(2025, time.August)
	for w := 0; w < Weeks; w++ {
		for i, c := range g.Week(w) {
			assert.Equal(t, time.Weekday(i), c.Date.Weekday())
		}
	}
}

func TestMonthCountsEveryDayOnce(t *testing.T) {
	g := Month(2024, time.February)
	n := 0
	for _, c := range g.Cells {
		if c.InMonth {
			n++
		}
	}
	assert.Equal(t, 29, n)
}

func TestShift(t *testing.T) {
	g := Month(2026, time.January)

	prev := g.Shift(-1)
	assert.Equal(t, 2025, prev.Year)
	assert.Equal(t, time.December, prev.Month)

	next := g.Shift(13)
	assert.Equal(t, 2027, next.Year)
	assert.Equal(t, time.February, next.Month)
}

func TestIndex(t *testing.T) {
	g := Month(2026, time.February)

	require.Equal(t, 10, g.Index("2026-02-11"))
	assert.Equal(t, -1, g.Index("2026-05-01"))
}
