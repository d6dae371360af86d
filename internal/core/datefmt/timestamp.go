package datefmt

import (
	"bytes"
	"encoding/json"
)

// Timestamp is a raw value tagged with its convention
type Timestamp struct {
	Kind Kind
	Raw  string
}

// Tag classifies raw by suffix, for values of unknown provenance
func Tag(raw string) Timestamp { return Timestamp{Kind: Classify(raw), Raw: raw} }

// EventLocal tags raw as an event-local wall clock
func EventLocal(raw string) Timestamp { return Timestamp{Kind: KindEventLocal, Raw: raw} }

// System tags raw as a UTC instant
func System(raw string) Timestamp { return Timestamp{Kind: KindSystem, Raw: raw} }

// IsZero reports a null timestamp
func (ts Timestamp) IsZero() bool { return ts.Raw == "" }

// Stamp returns ts itself so Timestamp satisfies Stamper
func (ts Timestamp) Stamp() Timestamp { return ts }

// MarshalJSON writes the raw string, or null when empty
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Raw)
}

// UnmarshalJSON reads a string or null and classifies it by suffix
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*ts = Tag(raw)
	return nil
}

// Stamper is implemented by field types that know their convention
type Stamper interface {
	Stamp() Timestamp
}

// EventTime is the field type of event-local values (startDate, startTime, funeralDate, funeralTime)
type EventTime string

// Stamp tags the value as event-local
func (e EventTime) Stamp() Timestamp { return EventLocal(string(e)) }

// SystemTime is the field type of audit values (createdAt, updatedAt, deletedAt, ...)
type SystemTime string

// Stamp tags the value as a UTC instant
func (s SystemTime) Stamp() Timestamp { return System(string(s)) }
