package datefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/locales"
)

// Default display patterns (dayjs token syntax)
const (
	PatternDate      = "DD/MM/YYYY"
	PatternTime      = "HH:mm"
	PatternDateTime  = "DD/MM/YYYY à HH:mm"
	PatternSystem    = "DD/MM/YYYY HH:mm"
	PatternDateInput = "YYYY-MM-DD"
	PatternTimeInput = "HH:mm"
	PatternLong      = "dddd DD MMMM YYYY à HH:mm"
)

var errUnterminatedEscape = errors.New("unterminated [ escape in pattern")

// maxRun is the longest token for each pattern letter
var maxRun = map[byte]int{
	'Y': 4, 'M': 4, 'D': 2, 'd': 4,
	'H': 2, 'h': 2, 'm': 2, 's': 2,
	'Z': 2, 'A': 1, 'a': 1,
}

// piece is either a literal or a token
type piece struct {
	lit string
	tok string
}

// compile splits a pattern into literals and tokens
func compile(pattern string) ([]piece, error) {
	var out []piece
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, piece{lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, errUnterminatedEscape
			}
			if end == 0 {
				// an empty escape is plain text
				lit.WriteString("[]")
				i += 2
				continue
			}
			lit.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
		case c == 'S' && strings.HasPrefix(pattern[i:], "SSS"):
			flush()
			out = append(out, piece{tok: "SSS"})
			i += 3
		case maxRun[c] > 0:
			n := 1
			for i+n < len(pattern) && pattern[i+n] == c && n < maxRun[c] {
				n++
			}
			flush()
			out = append(out, piece{tok: pattern[i : i+n]})
			i += n
		default:
			_, size := utf8.DecodeRuneInString(pattern[i:])
			lit.WriteString(pattern[i : i+size])
			i += size
		}
	}
	flush()
	return out, nil
}

// formatPattern renders t with a dayjs style pattern
func formatPattern(t time.Time, pattern string, names locales.Translator) (string, error) {
	pieces, err := compile(pattern)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, p := range pieces {
		if p.tok == "" {
			b.WriteString(p.lit)
			continue
		}
		b.WriteString(renderToken(t, p.tok, names))
	}
	return b.String(), nil
}

func renderToken(t time.Time, tok string, names locales.Translator) string {
	switch tok {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "MMM":
		return names.MonthAbbreviated(t.Month())
	case "MMMM":
		return names.MonthWide(t.Month())
	case "D":
		return strconv.Itoa(t.Day())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "dd":
		return names.WeekdayShort(t.Weekday())
	case "ddd":
		return names.WeekdayAbbreviated(t.Weekday())
	case "dddd":
		return names.WeekdayWide(t.Weekday())
	case "H":
		return strconv.Itoa(t.Hour())
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "h":
		return strconv.Itoa(hour12(t))
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "m":
		return strconv.Itoa(t.Minute())
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "s":
		return strconv.Itoa(t.Second())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "SSS":
		return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	default:
		// Y and YYY have no meaning, keep them as written
		return tok
	}
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// timeOnly reports whether the pattern renders time fields but no date field
func timeOnly(pattern string) bool {
	pieces, err := compile(pattern)
	if err != nil {
		return false
	}
	hasTime := false
	for _, p := range pieces {
		if p.tok == "" {
			continue
		}
		switch p.tok[0] {
		case 'Y', 'M', 'D', 'd':
			return false
		case 'H', 'h', 'm', 's', 'S', 'A', 'a':
			hasTime = true
		}
	}
	return hasTime
}
