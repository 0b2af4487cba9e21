package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var everyNDays = regexp.MustCompile(`^every (\d+) days?$`)

// ParseRecurrence parses a natural language or raw RRULE recurrence, used
// for planned rest days.
func ParseRecurrence(s string) (*rrule.RRule, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, fmt.Errorf("empty recurrence")
	}

	if isRawRRule(s) {
		raw := strings.TrimPrefix(strings.ToUpper(s), "RRULE:")
		r, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RRULE %q: %w", raw, err)
		}
		return r, nil
	}

	switch s {
	case "every day", "daily":
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY})
	case "every weekday", "weekdays":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
		})
	case "every weekend", "weekends":
		return rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		})
	}

	if m := everyNDays.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("invalid interval in %q: %w", s, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("invalid interval in %q", s)
		}
		return rrule.NewRRule(rrule.ROption{Freq: rrule.DAILY, Interval: n})
	}

	// "every sunday", "every tuesday and friday"
	if strings.HasPrefix(s, "every ") {
		var days []rrule.Weekday
		for _, name := range strings.FieldsFunc(strings.TrimPrefix(s, "every "), isListSeparator) {
			if name == "and" {
				continue
			}
			wd, ok := rruleWeekdays[name]
			if !ok {
				return nil, fmt.Errorf("unrecognized recurrence %q", s)
			}
			days = append(days, wd)
		}
		if len(days) > 0 {
			return rrule.NewRRule(rrule.ROption{Freq: rrule.WEEKLY, Byweekday: days})
		}
	}

	return nil, fmt.Errorf("unrecognized recurrence %q", s)
}

// Expand returns the dates r produces between from and to, inclusive.
// Rules without a DTSTART are anchored at from.
func Expand(r *rrule.RRule, from, to time.Time) ([]time.Time, error) {
	opts := r.OrigOptions
	if opts.Dtstart.IsZero() {
		opts.Dtstart = from
	}
	anchored, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, err
	}
	return anchored.Between(from, to, true), nil
}

// MonthRange returns midnight of the first and last day of a month.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	return first, last
}

func isRawRRule(s string) bool {
	return strings.HasPrefix(s, "freq=") || strings.HasPrefix(s, "rrule:")
}

func isListSeparator(r rune) bool {
	return r == ',' || r == ' '
}

var rruleWeekdays = map[string]rrule.Weekday{
	"sunday":    rrule.SU,
	"monday":    rrule.MO,
	"tuesday":   rrule.TU,
	"wednesday": rrule.WE,
	"thursday":  rrule.TH,
	"friday":    rrule.FR,
	"saturday":  rrule.SA,
}
