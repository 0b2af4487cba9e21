package day

import (
	"fmt"
	"time"
)

// Totals aggregates a month of records.
type Totals struct {
	Reps    int
	Hangs   int
	OffDays int
}

func (t Totals) String() string {
	return fmt.Sprintf("%d push-ups · %d hangs · %d off %s", t.Reps, t.Hangs, t.OffDays, plural(t.OffDays, "day", "days"))
}

// MonthTotals sums the records whose date falls in the given calendar
// month. Keys are parsed, not prefix-matched; keys that do not parse are
// skipped.
func MonthTotals(b *Book, year int, month time.Month) Totals {
	var t Totals
	if b == nil {
		return t
	}
	for key, r := range b.Days {
		d, err := ParseKey(key)
		if err != nil {
			continue
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		if r == nil {
			continue
		}
		if r.Off {
			t.OffDays++
		}
		t.Reps += r.Reps()
		t.Hangs += r.HangCount()
	}
	return t
}
