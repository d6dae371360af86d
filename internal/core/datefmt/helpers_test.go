package datefmt

import (
	"testing"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
)

var fixedNow = time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}

// newTest builds a French formatter on a fixed clock
func newTest(loc *time.Location, opts ...Option) *Formatter {
	base := []Option{WithLocation(loc), WithClock(func() time.Time { return fixedNow })}
	return New(append(base, opts...)...)
}

func english() Option { return WithLanguage(language.English) }
