package datefmt

import "time"

// Placeholders returned by the read path instead of errors
const (
	Placeholder = "-"
	InvalidDate = "Date invalide"
	InvalidTime = "Heure invalide"
	// InvalidDateTime is returned by FormatUTCDateTime when the instant does not parse
	InvalidDateTime = "Date/heure invalide"
	FormatError = "Erreur de date"
)

func orDefault(pattern, def string) string {
	if pattern == "" {
		return def
	}
	return pattern
}

func invalidFor(pattern string) string {
	if timeOnly(pattern) {
		return InvalidTime
	}
	return InvalidDate
}

// render formats t and reports false when the pattern is malformed
func (f *Formatter) render(op string, t time.Time, raw, pattern string) (string, bool) {
	out, err := formatPattern(t, pattern, f.names)
	if err != nil {
		f.diag.record(op, ReasonPattern, raw, pattern, f.zone)
		return FormatError, false
	}
	return out, true
}

func (f *Formatter) invalid(op, raw, pattern string) (string, bool) {
	f.diag.record(op, ReasonInvalid, raw, pattern, f.zone)
	return invalidFor(pattern), false
}

// convert is the UTC converting path: instant shifted into the viewer zone
func (f *Formatter) convert(op, raw, pattern string) (string, bool) {
	if raw == "" {
		return Placeholder, false
	}
	t, ok := parseUTC(raw)
	if !ok {
		return f.invalid(op, raw, pattern)
	}
	return f.render(op, t.In(f.loc), raw, pattern)
}

// direct renders the wall clock fields embedded in UTC labeled text, no shift
func (f *Formatter) direct(op, raw, pattern string) (string, bool) {
	if raw == "" {
		return Placeholder, false
	}
	t, ok := parseUTC(raw)
	if !ok {
		return f.invalid(op, raw, pattern)
	}
	return f.render(op, t, raw, pattern)
}

// wall renders a naive value with its own fields, no zone math at all
func (f *Formatter) wall(op, raw, pattern string) (string, bool) {
	if raw == "" {
		return Placeholder, false
	}
	t, ok := parseWall(raw)
	if !ok {
		return f.invalid(op, raw, pattern)
	}
	return f.render(op, t, raw, pattern)
}

func (f *Formatter) dispatch(op string, k Kind, raw, pattern string) (string, bool) {
	switch k {
	case KindEventLocal:
		return f.direct(op, raw, pattern)
	case KindSystem:
		return f.convert(op, raw, pattern)
	default:
		return f.wall(op, raw, pattern)
	}
}

// FormatSystem converts a true UTC timestamp to the viewer zone, default pattern DD/MM/YYYY HH:mm
func (f *Formatter) FormatSystem(raw, pattern string) string {
	out, _ := f.convert("format_system", raw, orDefault(pattern, PatternSystem))
	return out
}

// FormatEventLocal renders an event-local timestamp verbatim, default pattern DD/MM/YYYY HH:mm
func (f *Formatter) FormatEventLocal(raw, pattern string) string {
	out, _ := f.direct("format_event_local", raw, orDefault(pattern, PatternSystem))
	return out
}

//
// Display family: classified by suffix
//

// FormatDisplay classifies raw and dispatches to the matching strategy
func (f *Formatter) FormatDisplay(raw, pattern string) string {
	out, _ := f.dispatch("format_display", Classify(raw), raw, orDefault(pattern, PatternDate))
	return out
}

// FormatDisplayDate renders DD/MM/YYYY
func (f *Formatter) FormatDisplayDate(raw string) string { return f.FormatDisplay(raw, PatternDate) }

// FormatDisplayTime renders HH:mm
func (f *Formatter) FormatDisplayTime(raw string) string { return f.FormatDisplay(raw, PatternTime) }

// FormatDisplayDateTime renders DD/MM/YYYY à HH:mm
func (f *Formatter) FormatDisplayDateTime(raw string) string {
	return f.FormatDisplay(raw, PatternDateTime)
}

// ToDateInput renders YYYY-MM-DD for a date input, "-" when raw is empty and "" when invalid
func (f *Formatter) ToDateInput(raw string) string {
	return f.input("to_date_input", Tag(raw), PatternDateInput)
}

// ToTimeInput renders HH:mm for a time input, "-" when raw is empty and "" when invalid
func (f *Formatter) ToTimeInput(raw string) string {
	return f.input("to_time_input", Tag(raw), PatternTimeInput)
}

func (f *Formatter) input(op string, ts Timestamp, pattern string) string {
	if ts.Raw == "" {
		return Placeholder
	}
	out, ok := f.dispatch(op, ts.Kind, ts.Raw, pattern)
	if !ok {
		return ""
	}
	return out
}

//
// UTC family: always converting, for values known to be system timestamps
//

// FormatUTC converts raw to the viewer zone, default pattern DD/MM/YYYY
func (f *Formatter) FormatUTC(raw, pattern string) string {
	out, _ := f.convert("format_utc", raw, orDefault(pattern, PatternDate))
	return out
}

// FormatUTCDate renders DD/MM/YYYY in the viewer zone
func (f *Formatter) FormatUTCDate(raw string) string { return f.FormatUTC(raw, PatternDate) }

// FormatUTCTime renders HH:mm in the viewer zone
func (f *Formatter) FormatUTCTime(raw string) string { return f.FormatUTC(raw, PatternTime) }

// FormatUTCDateTime renders a date and time pair. time carries the full instant, date only gates
func (f *Formatter) FormatUTCDateTime(date, tm, pattern string) string {
	if date == "" || tm == "" {
		return Placeholder
	}
	out, ok := f.convert("format_utc_date_time", tm, orDefault(pattern, PatternDateTime))
	if !ok && out != FormatError {
		return InvalidDateTime
	}
	return out
}

// UTCToDateInput renders YYYY-MM-DD in the viewer zone, "" when empty or invalid
func (f *Formatter) UTCToDateInput(raw string) string {
	out, ok := f.convert("utc_to_date_input", raw, PatternDateInput)
	if !ok {
		return ""
	}
	return out
}

// UTCToTimeInput renders HH:mm in the viewer zone, "" when empty or invalid
func (f *Formatter) UTCToTimeInput(raw string) string {
	out, ok := f.convert("utc_to_time_input", raw, PatternTimeInput)
	if !ok {
		return ""
	}
	return out
}

//
// Tagged values
//

// Format renders ts with the strategy selected by its tag, default pattern DD/MM/YYYY
func (f *Formatter) Format(ts Timestamp, pattern string) string {
	out, _ := f.dispatch("format_tagged", ts.Kind, ts.Raw, orDefault(pattern, PatternDate))
	return out
}

// FormatInput renders ts for an HTML input with the strategy selected by its tag.
// Empty values give "-", unparsable ones ""
func (f *Formatter) FormatInput(ts Timestamp, pattern string) string {
	return f.input("format_input", ts, pattern)
}

// Instant resolves ts to an absolute time. Event-local and untagged wall clocks are read in
// the viewer zone, system values are UTC instants
func (f *Formatter) Instant(ts Timestamp) (time.Time, bool) {
	if ts.Raw == "" {
		return time.Time{}, false
	}
	switch ts.Kind {
	case KindSystem:
		return parseUTC(ts.Raw)
	case KindEventLocal:
		t, ok := parseUTC(ts.Raw)
		if !ok {
			return time.Time{}, false
		}
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), f.loc), true
	default:
		return parseInstant(ts.Raw, f.loc)
	}
}
