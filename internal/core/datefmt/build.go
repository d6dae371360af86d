package datefmt

import (
	"fmt"
	"strings"
	"time"

	perr "janaza/internal/platform/errors"
)

// ErrMissingDateTime is returned by builders when a form omits the date or the time
var ErrMissingDateTime = perr.New(perr.ErrorCodeInvalidArgument, "Date et heure sont requises")

// ErrMissingDate is returned by DateInputToISO on an empty input
var ErrMissingDate = perr.New(perr.ErrorCodeInvalidArgument, "La date est requise")

// ErrMissingTime is returned by TimeInputToISO on an empty input
var ErrMissingTime = perr.New(perr.ErrorCodeInvalidArgument, "L'heure est requise")

// fixedDay anchors time only values sent to the API
const fixedDay = "2000-01-01"

var localLayouts = []string{"2006-01-02 15:04", "2006-01-02 15:04:05"}

// BuildISOFromInputs stamps the typed date and time into UTC syntax without any zone math.
// It is the exact inverse of FormatEventLocal
func BuildISOFromInputs(date, tm string) (string, error) {
	if date == "" || tm == "" {
		return "", ErrMissingDateTime
	}
	return date + "T" + tm + ":00.000Z", nil
}

// BuildUTCFromLocalInputs reads date (YYYY-MM-DD or DD/MM/YYYY) and time (HH:mm) as wall clock
// in the viewer zone and returns the UTC instant
func (f *Formatter) BuildUTCFromLocalInputs(date, tm string) (string, error) {
	if date == "" || tm == "" {
		return "", ErrMissingDateTime
	}
	day, err := normalizeDate(date)
	if err != nil {
		return "", err
	}
	t, err := f.parseLocal(day + " " + tm)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "date et heure invalides: %q %q", date, tm)
	}
	return ISO(t), nil
}

// DateInputToISO converts a date input (local midnight) to a UTC instant
func (f *Formatter) DateInputToISO(date string) (string, error) {
	if date == "" {
		return "", ErrMissingDate
	}
	t, err := time.ParseInLocation("2006-01-02", date, f.loc)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "date invalide: %q", date)
	}
	return ISO(t), nil
}

// TimeInputToISO converts a time input to a UTC instant anchored on 2000-01-01
func (f *Formatter) TimeInputToISO(tm string) (string, error) {
	if tm == "" {
		return "", ErrMissingTime
	}
	t, err := f.parseLocal(fixedDay + " " + tm)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "heure invalide: %q", tm)
	}
	return ISO(t), nil
}

func (f *Formatter) parseLocal(s string) (time.Time, error) {
	var err error
	for _, layout := range localLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, f.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// normalizeDate turns DD/MM/YYYY into YYYY-MM-DD, other shapes pass through
func normalizeDate(date string) (string, error) {
	if !strings.Contains(date, "/") {
		return date, nil
	}
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "", perr.InvalidArgf("date invalide: %q", date)
	}
	day, month, year := parts[0], parts[1], parts[2]
	return fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day)), nil
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
