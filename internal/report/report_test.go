package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook(t *testing.T) *day.Book {
	t.Helper()
	var b day.Book
	require.NoError(t, json.Unmarshal([]byte(`{"days":{
		"2026-02-03": {"off":false,"pushSets":3,"hangs":[{"sec":40,"feet":false}],"notes":""},
		"2026-02-01": {"off":true,"pushSets":0,"hangs":[],"notes":"travel"},
		"2026-02-02": {"off":false,"pushSets":0,"hangs":[],"notes":""},
		"2026-02-04": {"off":false,"pushSets":0,"hangs":[],"notes":"sore shoulder"},
		"2026-03-01": {"off":false,"pushSets":5,"hangs":[],"notes":""},
		"garbage":    {"off":true,"pushSets":9,"hangs":[],"notes":""}
	}}`), &b))
	return &b
}

func TestMonthRowsInDateOrder(t *testing.T) {
	data := Month(sampleBook(t), 2026, time.February)

	require.Len(t, data.Rows, 3)
	assert.Equal(t, "2026-02-01", data.Rows[0].Key)
	assert.Equal(t, "2026-02-03", data.Rows[1].Key)
	assert.Equal(t, "2026-02-04", data.Rows[2].Key)

	assert.True(t, data.Rows[0].Off)
	assert.Equal(t, day.OffLine, data.Rows[0].Headline)
	assert.Equal(t, "travel", data.Rows[0].Notes)

	assert.Equal(t, "PPP H40", data.Rows[1].Line)
	assert.Equal(t, "30 push-ups · 1 hang", data.Rows[1].Headline)
	assert.Equal(t, 30, data.Rows[1].Reps)
	assert.Equal(t, 1, data.Rows[1].Hangs)

	assert.Equal(t, day.Totals{Reps: 30, Hangs: 1, OffDays: 1}, data.Totals)
}

func TestMonthEmpty(t *testing.T) {
	data := Month(day.NewBook(), 2026, time.February)
	assert.Empty(t, data.Rows)
	assert.Equal(t, day.Totals{}, data.Totals)

	data = Month(nil, 2026, time.February)
	assert.Empty(t, data.Rows)
}

func TestRecentNewestFirst(t *testing.T) {
	now := time.Date(2026, 2, 28, 12, 0, 0, 0, time.Local)

	rows := Recent(sampleBook(t), now, 0)
	require.Len(t, rows, 3)
	assert.Equal(t, "2026-02-04", rows[0].Key)
	assert.Equal(t, "2026-02-01", rows[2].Key)

	rows = Recent(sampleBook(t), now, 2)
	assert.Len(t, rows, 2)
}

func TestRecentSkipsFutureDays(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.Local)

	rows := Recent(sampleBook(t), now, 10)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-02-01", rows[0].Key)
}

func TestStreak(t *testing.T) {
	b := day.NewBook()
	b.AddPushSets("2026-02-08", 2)
	b.SetOff("2026-02-09", true)
	require.NoError(t, b.AddHang("2026-02-10", 30, false))
	b.EnsureDay("2026-02-07") // empty record breaks the streak

	// nothing logged today yet: count from yesterday
	now := time.Date(2026, 2, 11, 8, 0, 0, 0, time.Local)
	assert.Equal(t, 3, Streak(b, now))

	b.AddPushSets("2026-02-11", 1)
	assert.Equal(t, 4, Streak(b, now))

	assert.Equal(t, 0, Streak(day.NewBook(), now))
}
