package datefmt

import (
	"time"

	"github.com/go-playground/locales"
	"golang.org/x/text/language"
)

// Formatter carries the viewer locale context: zone, display language and clock.
// It is immutable once built and safe for concurrent use
type Formatter struct {
	zone  string
	loc   *time.Location
	lang  language.Tag
	names locales.Translator
	now   func() time.Time
	diag  *Diagnostics
}

// Option configures a Formatter
type Option func(*Formatter)

// WithZone selects an IANA zone; names that do not load are ignored
func WithZone(name string) Option {
	return func(f *Formatter) {
		if loc, ok := LoadZone(name); ok {
			f.zone, f.loc = loc.String(), loc
		}
	}
}

// WithLocation selects a zone from an already loaded location, fixed zones included
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.zone, f.loc = loc.String(), loc
		}
	}
}

// WithLanguage selects the language of month and weekday names and relative times
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.lang = tag
		f.names = namesFor(tag)
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		if now != nil {
			f.now = now
		}
	}
}

// WithDiagnostics routes swallowed failures to d
func WithDiagnostics(d *Diagnostics) Option {
	return func(f *Formatter) { f.diag = d }
}

// New builds a Formatter. Without a zone option the environment zone is resolved once here
func New(opts ...Option) *Formatter {
	f := &Formatter{
		lang:  language.French,
		names: namesFR,
		now:   time.Now,
	}
	for _, o := range opts {
		o(f)
	}
	if f.loc == nil {
		name := ResolveViewerTimezone()
		loc, err := loadLocation(name)
		if err != nil {
			// fallback zone missing from tzdata, keep UTC so formatting still works
			name, loc = time.UTC.String(), time.UTC
		}
		f.zone, f.loc = name, loc
	}
	return f
}

// With derives a Formatter sharing this one's settings and diagnostics
func (f *Formatter) With(opts ...Option) *Formatter {
	c := *f
	for _, o := range opts {
		o(&c)
	}
	return &c
}

// Zone returns the IANA name of the viewer zone
func (f *Formatter) Zone() string { return f.zone }

// Location returns the viewer zone
func (f *Formatter) Location() *time.Location { return f.loc }

// Language returns the display language
func (f *Formatter) Language() language.Tag { return f.lang }

// Diagnostics returns the failure counters, nil when none were configured
func (f *Formatter) Diagnostics() *Diagnostics { return f.diag }

// Now returns the current instant in the viewer zone
func (f *Formatter) Now() time.Time { return f.now().In(f.loc) }
