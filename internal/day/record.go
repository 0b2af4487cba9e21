package day

import (
	"bytes"
	"encoding/json"
)

// RepsPerSet is the fixed number of push-ups in one logged set.
const RepsPerSet = 10

// Hang is a single timed hang attempt.
type Hang struct {
	Seconds      int  `json:"sec"`
	FeetTouching bool `json:"feet"`
}

// field identifies one of the known record fields in persisted JSON.
type field uint8

const (
	fieldOff field = 1 << iota
	fieldPushSets
	fieldHangs
	fieldNotes

	allFields = fieldOff | fieldPushSets | fieldHangs | fieldNotes
)

var fieldNames = map[field]string{
	fieldOff:      "off",
	fieldPushSets: "pushSets",
	fieldHangs:    "hangs",
	fieldNotes:    "notes",
}

// Record is everything logged for one calendar date.
//
// Records decoded from older or hand-edited data may lack some fields. The
// missing ones (absent or null) read as their zero value and are left out
// when the record is encoded again, until Backfill fills them in. Known keys
// holding a value of the wrong type also read as zero, but their stored value
// is kept and written back until the field is explicitly set. Unknown keys are
// carried through untouched.
type Record struct {
	Off      bool
	PushSets int
	Hangs    []Hang
	Notes    string

	missing   field
	malformed field
	extra     map[string]json.RawMessage
	raw       json.RawMessage // set when the persisted value was not an object
}

// NewRecord returns a record with every field at its default.
func NewRecord() *Record {
	return &Record{Hangs: []Hang{}}
}

// Complete reports whether every known field is present.
func (r *Record) Complete() bool {
	return r != nil && r.missing == 0 && r.raw == nil
}

// Missing returns the JSON names of the fields absent from the record.
func (r *Record) Missing() []string {
	if r == nil {
		return nil
	}
	return r.missing.names()
}

// Malformed returns the JSON names of known fields whose stored value has
// the wrong type.
func (r *Record) Malformed() []string {
	if r == nil {
		return nil
	}
	return r.malformed.names()
}

func (f field) names() []string {
	var names []string
	for _, one := range []field{fieldOff, fieldPushSets, fieldHangs, fieldNotes} {
		if f&one != 0 {
			names = append(names, fieldNames[one])
		}
	}
	return names
}

// Backfill sets every absent field to its default. Present fields, values
// of the wrong type and unknown keys are kept as they are.
func (r *Record) Backfill() {
	if r.raw != nil {
		// Nothing usable in a non-object value; start over from defaults.
		r.raw = nil
		r.missing = allFields
		r.malformed = 0
	}
	for f, name := range fieldNames {
		if r.missing&f != 0 {
			// only ever a stored null
			delete(r.extra, name)
		}
	}
	if len(r.extra) == 0 {
		r.extra = nil
	}
	if r.missing&fieldOff != 0 {
		r.Off = false
	}
	if r.missing&fieldPushSets != 0 {
		r.PushSets = 0
	}
	if r.missing&fieldNotes != 0 {
		r.Notes = ""
	}
	if r.Hangs == nil {
		r.Hangs = []Hang{}
	}
	r.missing = 0
}

// assigned records that f now holds a value set by the user, replacing
// whatever was stored for it.
func (r *Record) assigned(f field) {
	r.missing &^= f
	if r.malformed&f == 0 {
		return
	}
	r.malformed &^= f
	delete(r.extra, fieldNames[f])
	if len(r.extra) == 0 {
		r.extra = nil
	}
}

// HangCount returns the number of hangs logged.
func (r *Record) HangCount() int {
	if r == nil {
		return 0
	}
	return len(r.Hangs)
}

// Sets returns the push-up set count, never negative.
func (r *Record) Sets() int {
	if r == nil || r.PushSets < 0 {
		return 0
	}
	return r.PushSets
}

// Reps returns the push-up repetitions for the day.
func (r *Record) Reps() int {
	return r.Sets() * RepsPerSet
}

// Active reports whether any push-ups or hangs were logged.
func (r *Record) Active() bool {
	return r.Sets() > 0 || r.HangCount() > 0
}

type plainRecord struct {
	Off      bool   `json:"off"`
	PushSets int    `json:"pushSets"`
	Hangs    []Hang `json:"hangs"`
	Notes    string `json:"notes"`
}

func (r *Record) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}

	hangs := r.Hangs
	if hangs == nil {
		hangs = []Hang{}
	}

	if r.missing == 0 && r.malformed == 0 && len(r.extra) == 0 {
		return json.Marshal(plainRecord{Off: r.Off, PushSets: r.PushSets, Hangs: hangs, Notes: r.Notes})
	}

	out := make(map[string]json.RawMessage, len(r.extra)+4)
	for k, v := range r.extra {
		out[k] = v
	}

	present := map[field]any{
		fieldOff:      r.Off,
		fieldPushSets: r.PushSets,
		fieldHangs:    hangs,
		fieldNotes:    r.Notes,
	}
	for f, v := range present {
		if (r.missing|r.malformed)&f != 0 {
			continue
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[fieldNames[f]] = data
	}
	return json.Marshal(out)
}

func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{missing: allFields}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		r.raw = append(json.RawMessage(nil), data...)
		return nil
	}

	for k, v := range obj {
		ok := false
		switch k {
		case "off":
			ok = decodeField(r, fieldOff, v, &r.Off)
		case "pushSets":
			ok = decodeField(r, fieldPushSets, v, &r.PushSets)
		case "hangs":
			ok = decodeField(r, fieldHangs, v, &r.Hangs)
		case "notes":
			ok = decodeField(r, fieldNotes, v, &r.Notes)
		}
		if ok {
			continue
		}
		if r.extra == nil {
			r.extra = make(map[string]json.RawMessage)
		}
		r.extra[k] = v
	}
	return nil
}

// decodeField reads the known field f from v into dst and reports whether
// it could. A null leaves f missing; a value of the wrong type marks it
// malformed and leaves dst at zero. Either way the caller keeps v as it was
// stored.
func decodeField[T any](r *Record, f field, v json.RawMessage, dst *T) bool {
	if isNull(v) {
		return false
	}
	r.missing &^= f
	var t T
	if err := json.Unmarshal(v, &t); err != nil {
		r.malformed |= f
		return false
	}
	*dst = t
	return true
}

func isNull(v json.RawMessage) bool {
	return len(v) == 0 || bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}
