package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parse parses a date expression relative to now. Logging looks backwards,
// so a bare weekday name means the most recent such day, today included.
// Supports: "today", "yesterday", "tomorrow", "monday", "last monday",
// "2026-02-01", "feb 1", "feb 1 2026", "february 1", "1 feb", "1 february 2026".
func Parse(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "", "today":
		return truncateToDay(now), nil
	case "yesterday":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	case "tomorrow":
		return truncateToDay(now).AddDate(0, 0, 1), nil
	}

	if strings.HasPrefix(s, "last ") {
		if wd, ok := weekdays[strings.TrimPrefix(s, "last ")]; ok {
			return previousWeekday(now, wd, false), nil
		}
	}
	if wd, ok := weekdays[s]; ok {
		return previousWeekday(now, wd, true), nil
	}

	layouts := []string{
		"2006-01-02",
		"2006-1-2",
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			if !hasYear(layout) {
				t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseMonth parses a month expression relative to now: "" (this month),
// "2026-02", "2", "feb", "february", "feb 2026", "february 2026",
// "last month", "next month".
func ParseMonth(s string, now time.Time) (int, time.Month, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "", "this month":
		return now.Year(), now.Month(), nil
	case "last month", "previous month":
		t := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		return t.Year(), t.Month(), nil
	case "next month":
		t := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		return t.Year(), t.Month(), nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, 0, fmt.Errorf("invalid month %q (expected 1-12)", s)
		}
		return now.Year(), time.Month(n), nil
	}

	layouts := []string{"2006-01", "2006-1", "Jan", "January", "Jan 2006", "January 2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			if !hasYear(layout) {
				return now.Year(), t.Month(), nil
			}
			return t.Year(), t.Month(), nil
		}
	}

	return 0, 0, fmt.Errorf("unrecognized month %q", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// previousWeekday returns the latest wd on or before now. With
// includeToday false, today is skipped.
func previousWeekday(now time.Time, wd time.Weekday, includeToday bool) time.Time {
	today := truncateToDay(now)
	daysBack := int(today.Weekday()) - int(wd)
	if daysBack < 0 || (daysBack == 0 && !includeToday) {
		daysBack += 7
	}
	return today.AddDate(0, 0, -daysBack)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
