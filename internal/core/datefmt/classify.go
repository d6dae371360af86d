// Package datefmt normalizes the two timestamp conventions served by the janaza API
//
// Event-local timestamps (prayer and funeral date/time) arrive with a zeroed millisecond
// component ("2025-10-05T18:00:00.000Z"): the backend already shifted them to the site's wall
// clock, so they are rendered verbatim. System timestamps (createdAt, updatedAt, ...) are true
// UTC instants with precise milliseconds and are converted to the viewer zone before display.
package datefmt

import (
	"strings"
	"time"
)

// Kind is the serialization convention of a raw timestamp
type Kind uint8

const (
	// KindUntagged is a naive wall clock string without a UTC designator
	KindUntagged Kind = iota
	// KindEventLocal is a wall clock already shifted server side, wrapped in UTC syntax
	KindEventLocal
	// KindSystem is a true UTC instant
	KindSystem
)

const (
	eventLocalSuffix = ".000Z"
	utcDesignator    = "Z"

	// isoLayout mirrors a JS Date.toISOString: UTC, millisecond precision, Z suffix
	isoLayout = "2006-01-02T15:04:05.000Z"
)

// String returns the wire name of the kind
func (k Kind) String() string {
	switch k {
	case KindEventLocal:
		return "event-local"
	case KindSystem:
		return "system"
	default:
		return "untagged"
	}
}

// MarshalText encodes the kind by name
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name, unknown names map to KindUntagged
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "event-local":
		*k = KindEventLocal
	case "system":
		*k = KindSystem
	default:
		*k = KindUntagged
	}
	return nil
}

// Classify decides the convention of raw from its literal suffix only
func Classify(raw string) Kind {
	switch {
	case strings.HasSuffix(raw, eventLocalSuffix):
		return KindEventLocal
	case strings.HasSuffix(raw, utcDesignator):
		return KindSystem
	default:
		return KindUntagged
	}
}

// ClassifyTime classifies the ISO serialization of t
func ClassifyTime(t time.Time) Kind { return Classify(ISO(t)) }

// ISO serializes t as a UTC ISO-8601 string with millisecond precision
func ISO(t time.Time) string { return t.UTC().Format(isoLayout) }
