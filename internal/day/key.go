package day

import (
	"fmt"
	"time"
)

// KeyLayout is the layout of a date key.
const KeyLayout = "2006-01-02"

// keyLayouts are accepted when reading keys back; unpadded keys show up in
// hand-edited backups.
var keyLayouts = []string{KeyLayout, "2006-1-2"}

// Key returns the date key for t in t's own location.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a date key into local midnight of that date.
func ParseKey(s string) (time.Time, error) {
	for _, layout := range keyLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date key %q (expected YYYY-MM-DD)", s)
}
