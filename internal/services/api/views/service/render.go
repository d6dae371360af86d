package service

import (
	"strconv"

	"janaza/internal/core/datefmt"
	pstrings "janaza/internal/platform/strings"
	"janaza/internal/services/api/views/domain"
)

func systemDateTime(f *datefmt.Formatter, v datefmt.SystemTime) string {
	return f.Format(v.Stamp(), datefmt.PatternDateTime)
}

// schedule renders the date carried by date and the time carried by tm, both event-local
func schedule(f *datefmt.Formatter, date, tm datefmt.EventTime) domain.ScheduleView {
	d := f.Format(date.Stamp(), datefmt.PatternDate)
	t := f.Format(tm.Stamp(), datefmt.PatternTime)
	v := domain.ScheduleView{
		Date:      d,
		Time:      t,
		DateTime:  datefmt.Placeholder,
		Long:      datefmt.Placeholder,
		DateInput: f.FormatInput(date.Stamp(), datefmt.PatternDateInput),
		TimeInput: f.FormatInput(tm.Stamp(), datefmt.PatternTimeInput),
	}
	if iso, ok := combine(v.DateInput, v.TimeInput); ok {
		v.DateTime = f.Format(datefmt.EventLocal(iso), datefmt.PatternDateTime)
		v.Long = f.Format(datefmt.EventLocal(iso), datefmt.PatternLong)
	}
	return v
}

// combine joins input values into an event-local timestamp; placeholders and blanks do not combine
func combine(date, tm string) (string, bool) {
	if !usable(date) || !usable(tm) {
		return "", false
	}
	iso, err := datefmt.BuildISOFromInputs(date, tm)
	return iso, err == nil
}

func usable(v string) bool { return v != "" && v != datefmt.Placeholder }

// upcoming reports whether the prayer, read as a wall clock in the viewer zone, is still ahead
func upcoming(f *datefmt.Formatter, date, tm datefmt.EventTime) bool {
	iso, ok := combine(
		f.FormatInput(date.Stamp(), datefmt.PatternDateInput),
		f.FormatInput(tm.Stamp(), datefmt.PatternTimeInput),
	)
	if !ok {
		return false
	}
	at, ok := f.Instant(datefmt.EventLocal(iso))
	return ok && at.After(f.Now())
}

func postCode(n *int) string {
	if n == nil || *n == 0 {
		return ""
	}
	return strconv.Itoa(*n)
}

func place(address, code, city, country string) domain.PlaceView {
	return domain.PlaceView{
		Address:  pstrings.Or(address, datefmt.Placeholder),
		PostCode: pstrings.Or(code, datefmt.Placeholder),
		City:     pstrings.Or(city, datefmt.Placeholder),
		Country:  pstrings.Or(country, datefmt.Placeholder),
	}
}

func announceStatus(in domain.Announce) string {
	switch {
	case in.DeletedAt != "":
		return "Supprimée"
	case in.Expired || in.ExpiredAt != "":
		return "Expirée"
	case in.Active:
		return "Active"
	default:
		return "Inactive"
	}
}
