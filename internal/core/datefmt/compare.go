package datefmt

// CompareDates orders two UTC instants: -1 when a is before b, 1 when after, 0 when equal.
// Empty or unparsable operands compare as 0
func CompareDates(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	ta, ok := parseUTC(a)
	if !ok {
		return 0
	}
	tb, ok := parseUTC(b)
	if !ok {
		return 0
	}
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	default:
		return 0
	}
}

// IsPast reports whether the UTC instant raw is before now. Empty or invalid input is not past
func (f *Formatter) IsPast(raw string) bool {
	if raw == "" {
		return false
	}
	t, ok := parseUTC(raw)
	if !ok {
		f.diag.record("is_past", ReasonInvalid, raw, "", f.zone)
		return false
	}
	return t.Before(f.now())
}
