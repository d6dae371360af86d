package datefmt

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// relative wording per language, keyed like dayjs relativeTime
type relWords struct {
	future, past string
	units        map[string]string
}

var (
	relFR = relWords{
		future: "dans %s",
		past:   "il y a %s",
		units: map[string]string{
			"s": "quelques secondes", "m": "une minute", "mm": "%d minutes",
			"h": "une heure", "hh": "%d heures", "d": "un jour", "dd": "%d jours",
			"M": "un mois", "MM": "%d mois", "y": "un an", "yy": "%d ans",
		},
	}
	relEN = relWords{
		future: "in %s",
		past:   "%s ago",
		units: map[string]string{
			"s": "a few seconds", "m": "a minute", "mm": "%d minutes",
			"h": "an hour", "hh": "%d hours", "d": "a day", "dd": "%d days",
			"M": "a month", "MM": "%d months", "y": "a year", "yy": "%d years",
		},
	}
)

const (
	day   = 24 * time.Hour
	month = 2629800 * time.Second // 365.25 days / 12
	year  = 12 * month
)

// threshold steps; unit 0 reuses the previous measurement, max 0 is unbounded
var thresholds = []struct {
	label string
	max   float64
	unit  time.Duration
}{
	{"s", 44, time.Second},
	{"m", 89, 0},
	{"mm", 44, time.Minute},
	{"h", 89, 0},
	{"hh", 21, time.Hour},
	{"d", 35, 0},
	{"dd", 25, day},
	{"M", 45, 0},
	{"MM", 10, month},
	{"y", 17, 0},
	{"yy", 0, year},
}

// FormatRelative renders the distance between raw and now ("il y a 2 heures")
func (f *Formatter) FormatRelative(raw string) string {
	if raw == "" {
		return Placeholder
	}
	t, ok := parseInstant(raw, f.loc)
	if !ok {
		out, _ := f.invalid("format_relative", raw, PatternDate)
		return out
	}
	return humanize(t.Sub(f.now()), f.words())
}

func (f *Formatter) words() relWords {
	if isEnglish(f.lang) {
		return relEN
	}
	return relFR
}

// humanize follows dayjs relativeTime rounding; positive d is in the future
func humanize(d time.Duration, w relWords) string {
	abs := d
	if abs < 0 {
		abs = -abs
	}
	var (
		n   float64
		out string
	)
	for i, th := range thresholds {
		if th.unit != 0 {
			n = math.Round(float64(abs) / float64(th.unit))
		}
		if th.max == 0 || n <= th.max {
			label := th.label
			if n <= 1 && i > 0 {
				label = thresholds[i-1].label
			}
			out = strings.Replace(w.units[label], "%d", strconv.Itoa(int(n)), 1)
			break
		}
	}
	if d > 0 {
		return strings.Replace(w.future, "%s", out, 1)
	}
	return strings.Replace(w.past, "%s", out, 1)
}
