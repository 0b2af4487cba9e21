package report

import (
	"sort"
	"time"

	"github.com/GKA777/pushups-app/internal/day"
)

// Row is one logged day.
type Row struct {
	Date     time.Time
	Key      string
	Off      bool
	Reps     int
	Hangs    int
	Line     string
	Headline string
	Notes    string
}

// Data is a month of rows plus the month's totals.
type Data struct {
	Year   int
	Month  time.Month
	Rows   []Row
	Totals day.Totals
}

// Month collects the days of year/month that have something on record:
// a rest day, push-ups, hangs or notes. Rows are in date order.
func Month(b *day.Book, year int, month time.Month) Data {
	data := Data{
		Year:   year,
		Month:  month,
		Totals: day.MonthTotals(b, year, month),
	}
	if b == nil {
		return data
	}

	for key, r := range b.Days {
		d, err := day.ParseKey(key)
		if err != nil || d.Year() != year || d.Month() != month {
			continue
		}
		if row, ok := newRow(d, key, r); ok {
			data.Rows = append(data.Rows, row)
		}
	}
	sortRows(data.Rows)
	return data
}

// Recent returns up to limit of the latest logged days on or before now,
// newest first. A limit of 0 returns them all.
func Recent(b *day.Book, now time.Time, limit int) []Row {
	if b == nil {
		return nil
	}

	var rows []Row
	for key, r := range b.Days {
		d, err := day.ParseKey(key)
		if err != nil || d.After(now) {
			continue
		}
		if row, ok := newRow(d, key, r); ok {
			rows = append(rows, row)
		}
	}

	sortRows(rows)
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Streak counts consecutive days ending today (or yesterday, if today has
// nothing yet) that are either active or rest days.
func Streak(b *day.Book, now time.Time) int {
	d := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if !counts(b.Get(day.Key(d))) {
		d = d.AddDate(0, 0, -1)
	}

	n := 0
	for counts(b.Get(day.Key(d))) {
		n++
		d = d.AddDate(0, 0, -1)
	}
	return n
}

func counts(r *day.Record) bool {
	return r != nil && (r.Off || r.Active())
}

func newRow(d time.Time, key string, r *day.Record) (Row, bool) {
	if r == nil || !(r.Off || r.Active() || r.Notes != "") {
		return Row{}, false
	}
	return Row{
		Date:     d,
		Key:      key,
		Off:      r.Off,
		Reps:     r.Reps(),
		Hangs:    r.HangCount(),
		Line:     day.Line(r),
		Headline: day.Headline(r),
		Notes:    r.Notes,
	}, true
}

func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Key < rows[j].Key
		}
		return rows[i].Date.Before(rows[j].Date)
	})
}
