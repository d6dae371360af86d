package datefmt

import "time"

// naiveLayouts are the accepted shapes without zone information.
// Fractional seconds are accepted after the seconds field by time.Parse
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04:05",
	"15:04",
}

// parseUTC reads raw as an instant; naive values are read as UTC
func parseUTC(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	return parseNaive(raw, time.UTC)
}

// parseWall keeps the wall clock fields exactly as written, offsets included
func parseWall(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return parseNaive(raw, time.UTC)
}

// parseInstant reads raw as an instant; naive values are wall clock in loc
func parseInstant(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return parseNaive(raw, loc)
}

func parseNaive(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
