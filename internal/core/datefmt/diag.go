package datefmt

import (
	"sync/atomic"

	"janaza/internal/platform/logger"
)

// Reason labels a swallowed read path failure
type Reason string

const (
	// ReasonInvalid is an unparsable timestamp
	ReasonInvalid Reason = "invalid"
	// ReasonPattern is a malformed display pattern
	ReasonPattern Reason = "pattern"
)

// Diagnostics counts malformed data seen by formatters and logs one event per failure
type Diagnostics struct {
	invalid atomic.Int64
	pattern atomic.Int64
	log     *logger.Logger
}

// Snapshot is a point in time copy of the counters
type Snapshot struct {
	Invalid int64 `json:"invalid"`
	Pattern int64 `json:"pattern"`
}

// NewDiagnostics builds a Diagnostics logging through l, or the datefmt named logger when nil
func NewDiagnostics(l *logger.Logger) *Diagnostics {
	if l == nil {
		l = logger.Named("datefmt")
	}
	return &Diagnostics{log: l}
}

// Snapshot returns the current counters
func (d *Diagnostics) Snapshot() Snapshot {
	if d == nil {
		return Snapshot{}
	}
	return Snapshot{Invalid: d.invalid.Load(), Pattern: d.pattern.Load()}
}

func (d *Diagnostics) record(op string, r Reason, raw, pattern, zone string) {
	if d == nil {
		return
	}
	switch r {
	case ReasonInvalid:
		d.invalid.Add(1)
	case ReasonPattern:
		d.pattern.Add(1)
	}
	d.log.Warn().
		Str("op", op).
		Str("reason", string(r)).
		Str("raw", raw).
		Str("pattern", pattern).
		Str("zone", zone).
		Msg("timestamp not formatted")
}
