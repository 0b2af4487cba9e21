package day

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidHang is returned when a hang duration is not positive.
	ErrInvalidHang = errors.New("hang duration must be a positive number of seconds")
	// ErrHangIndex is returned when removing a hang that does not exist.
	ErrHangIndex = errors.New("no hang at that position")
	// ErrInvalidFormat is the cause of an ImportError for data without days.
	ErrInvalidFormat = errors.New("invalid format: missing \"days\"")
)

// ImportError reports why imported data was rejected. The book it was
// meant to replace is left unchanged.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string {
	if e.Err == nil {
		return "import failed: unknown error"
	}
	return "import failed: " + e.Err.Error()
}

func (e *ImportError) Unwrap() error { return e.Err }

// Book holds every logged day keyed by ISO date (YYYY-MM-DD).
type Book struct {
	Days map[string]*Record

	extra map[string]json.RawMessage
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{Days: map[string]*Record{}}
}

// Keys returns the date keys in chronological order.
func (b *Book) Keys() []string {
	keys := make([]string, 0, len(b.Days))
	for k := range b.Days {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the record for key, or nil. It never creates one.
func (b *Book) Get(key string) *Record {
	if b == nil {
		return nil
	}
	return b.Days[key]
}

// EnsureDay returns the record for key, creating it with defaults when it
// does not exist and back-filling missing fields when it does.
func (b *Book) EnsureDay(key string) *Record {
	if b.Days == nil {
		b.Days = map[string]*Record{}
	}
	r := b.Days[key]
	if r == nil {
		r = NewRecord()
		b.Days[key] = r
		return r
	}
	r.Backfill()
	return r
}

// Delete removes the record for key. Deleting an absent key is a no-op.
func (b *Book) Delete(key string) {
	delete(b.Days, key)
}

// Replace swaps the whole contents of b for next. next must carry a days
// mapping; otherwise an *ImportError is returned and b is not modified.
// Records are taken as they are: defaults are filled in on first use by
// EnsureDay, not here.
func (b *Book) Replace(next *Book) error {
	if next == nil || next.Days == nil {
		return &ImportError{Err: ErrInvalidFormat}
	}
	b.Days = next.Days
	b.extra = next.extra
	return nil
}

// ToggleOff flips the rest-day flag and returns the new value. Logged
// push-ups, hangs and notes are kept.
func (b *Book) ToggleOff(key string) bool {
	r := b.EnsureDay(key)
	r.Off = !r.Off
	r.assigned(fieldOff)
	return r.Off
}

// SetOff sets the rest-day flag.
func (b *Book) SetOff(key string, off bool) {
	r := b.EnsureDay(key)
	r.Off = off
	r.assigned(fieldOff)
}

// SetPushSets stores n sets, clamped to zero, and returns the stored value.
func (b *Book) SetPushSets(key string, n int) int {
	r := b.EnsureDay(key)
	r.PushSets = max(0, n)
	r.assigned(fieldPushSets)
	return r.PushSets
}

// AddPushSets adjusts the set count by delta, clamped to zero.
func (b *Book) AddPushSets(key string, delta int) int {
	r := b.EnsureDay(key)
	return b.SetPushSets(key, r.Sets()+delta)
}

// AddHang appends a hang to the day.
func (b *Book) AddHang(key string, seconds int, feetTouching bool) error {
	if seconds <= 0 {
		return ErrInvalidHang
	}
	r := b.EnsureDay(key)
	r.Hangs = append(r.Hangs, Hang{Seconds: seconds, FeetTouching: feetTouching})
	r.assigned(fieldHangs)
	return nil
}

// RemoveHang removes the hang at the 0-based position idx.
func (b *Book) RemoveHang(key string, idx int) (Hang, error) {
	r := b.EnsureDay(key)
	if idx < 0 || idx >= len(r.Hangs) {
		return Hang{}, fmt.Errorf("%w (day has %d)", ErrHangIndex, len(r.Hangs))
	}
	removed := r.Hangs[idx]
	r.Hangs = append(r.Hangs[:idx], r.Hangs[idx+1:]...)
	r.assigned(fieldHangs)
	return removed, nil
}

// SetNotes replaces the day's notes.
func (b *Book) SetNotes(key, notes string) {
	r := b.EnsureDay(key)
	r.Notes = notes
	r.assigned(fieldNotes)
}

func (b *Book) MarshalJSON() ([]byte, error) {
	days := b.Days
	if days == nil {
		days = map[string]*Record{}
	}
	if len(b.extra) == 0 {
		return json.Marshal(struct {
			Days map[string]*Record `json:"days"`
		}{days})
	}

	out := make(map[string]any, len(b.extra)+1)
	for k, v := range b.extra {
		out[k] = v
	}
	out["days"] = days
	return json.Marshal(out)
}

// UnmarshalJSON decodes a stored book. A missing or null days field leaves
// Days nil so callers can tell it apart from an empty mapping.
func (b *Book) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj == nil {
		return errors.New("expected a JSON object")
	}

	*b = Book{}
	for k, v := range obj {
		if k != "days" {
			if b.extra == nil {
				b.extra = make(map[string]json.RawMessage)
			}
			b.extra[k] = v
			continue
		}
		if isNull(v) {
			continue
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(v, &raw); err != nil {
			return fmt.Errorf("days: %w", err)
		}
		b.Days = make(map[string]*Record, len(raw))
		for key, rv := range raw {
			if isNull(rv) {
				b.Days[key] = nil
				continue
			}
			r := &Record{}
			if err := r.UnmarshalJSON(rv); err != nil {
				return fmt.Errorf("days[%s]: %w", key, err)
			}
			b.Days[key] = r
		}
	}
	return nil
}
