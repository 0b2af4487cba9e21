package cli

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/GKA777/pushups-app/internal/calendar"
	"github.com/GKA777/pushups-app/internal/day"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMonth(t *testing.T) {
	var b day.Book
	require.NoError(t, json.Unmarshal([]byte(sampleLog), &b))

	out := renderMonth(calendar.Month(2026, time.February), &b, "", "2026-02-11")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "February 2026")
	assert.True(t, strings.HasPrefix(lines[1], "Sun"))
	// Feb 1 2026 is a Sunday: first cell of the first week
	assert.True(t, strings.HasPrefix(lines[2], " 1 OFF"))
	assert.Contains(t, lines[3], " 9 20·0")
	assert.Contains(t, lines[3], "10 30·2")
	// trailing March days show their own badges
	assert.Contains(t, lines[6], " 1 50·0")
}

func TestRenderCellWidth(t *testing.T) {
	g := calendar.Month(2026, time.February)
	r := &day.Record{PushSets: 12, Hangs: []day.Hang{{Seconds: 1}, {Seconds: 2}}}

	cell := renderCell(g.Cells[3], r, true, true)

	assert.Contains(t, cell, " 4 120·2")
	assert.GreaterOrEqual(t, len([]rune(cell)), cellWidth)
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
	assert.Equal(t, "·  ", padRight("·", 3))
}
