package day

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// OffLine is shown in place of a line or summary on rest days.
	OffLine = "DAY OFF"
	// EmptyLine is the line for a day with nothing logged.
	EmptyLine = "—"
	// OffBadge marks a rest day in the calendar.
	OffBadge = "OFF"
)

// HangToken formats a hang as H<seconds>, with an "f" suffix when the feet
// were touching.
func HangToken(h Hang) string {
	token := "H" + strconv.Itoa(h.Seconds)
	if h.FeetTouching {
		token += "f"
	}
	return token
}

// Line renders a day as a compact log line, e.g. "PPP H40 H30f".
func Line(r *Record) string {
	if r == nil {
		return EmptyLine
	}
	if r.Off {
		return OffLine
	}

	var parts []string
	if sets := r.Sets(); sets > 0 {
		parts = append(parts, strings.Repeat("P", sets))
	}
	for _, h := range r.Hangs {
		parts = append(parts, HangToken(h))
	}
	if len(parts) == 0 {
		return EmptyLine
	}
	return strings.Join(parts, " ")
}

// Summary renders "<reps> push-ups · <n> hang(s)". Rest days are not
// special-cased; see Headline.
func Summary(r *Record) string {
	return fmt.Sprintf("%d push-ups · %d %s", r.Reps(), r.HangCount(), plural(r.HangCount(), "hang", "hangs"))
}

// Headline is Summary, or OffLine on a rest day.
func Headline(r *Record) string {
	if r != nil && r.Off {
		return OffLine
	}
	return Summary(r)
}

// Badge is the short calendar cell marker: "OFF", "<reps>·<hangs>", or
// empty when nothing was logged.
func Badge(r *Record) string {
	if r == nil {
		return ""
	}
	if r.Off {
		return OffBadge
	}
	if !r.Active() {
		return ""
	}
	return fmt.Sprintf("%d·%d", r.Reps(), r.HangCount())
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
