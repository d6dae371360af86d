package datefmt

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const (
	minUnix = 946684800  // 2000-01-01
	maxUnix = 4102444800 // 2100-01-01
)

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// Property: typed inputs survive build then display in every zone
func TestEventLocalRoundTrip(t *testing.T) {
	p := properties(t)
	p.Property("build then format returns the typed inputs", prop.ForAll(
		func(sec int64, offsetMin int) bool {
			wall := time.Unix(sec, 0).UTC()
			date, tm := wall.Format("2006-01-02"), wall.Format("15:04")
			iso, err := BuildISOFromInputs(date, tm)
			if err != nil {
				return false
			}
			f := newTest(time.FixedZone("", offsetMin*60))
			return f.ToDateInput(iso) == date &&
				f.ToTimeInput(iso) == tm &&
				f.FormatEventLocal(iso, "YYYY-MM-DD HH:mm") == date+" "+tm
		},
		gen.Int64Range(minUnix, maxUnix),
		gen.IntRange(-12*60, 14*60),
	))
	p.TestingRun(t)
}

// Property: local inputs converted to UTC come back unchanged in the same zone
func TestLocalInputsRoundTrip(t *testing.T) {
	p := properties(t)
	p.Property("utc from local inputs is reversible", prop.ForAll(
		func(sec int64, offsetMin int) bool {
			loc := time.FixedZone("", offsetMin*60)
			wall := time.Unix(sec, 0).In(loc)
			date, tm := wall.Format("2006-01-02"), wall.Format("15:04")
			f := newTest(loc)
			iso, err := f.BuildUTCFromLocalInputs(date, tm)
			if err != nil {
				return false
			}
			return f.UTCToDateInput(iso) == date && f.UTCToTimeInput(iso) == tm
		},
		gen.Int64Range(minUnix, maxUnix),
		gen.IntRange(-12*60, 14*60),
	))
	p.TestingRun(t)
}

// Property: only a zero millisecond component classifies as event-local
func TestClassificationFlip(t *testing.T) {
	p := properties(t)
	p.Property("zero millis are event-local, other millis are system", prop.ForAll(
		func(sec int64, ms int) bool {
			ts := time.Unix(sec, int64(ms)*int64(time.Millisecond))
			want := KindSystem
			if ms == 0 {
				want = KindEventLocal
			}
			return ClassifyTime(ts) == want && Classify(ISO(ts)) == want
		},
		gen.Int64Range(minUnix, maxUnix),
		gen.IntRange(0, 999),
	))
	p.TestingRun(t)
}

// Property: CompareDates is an order on instants
func TestCompareDatesOrder(t *testing.T) {
	p := properties(t)
	iso := func(sec int64) string { return ISO(time.Unix(sec, 0)) }
	p.Property("antisymmetric", prop.ForAll(
		func(a, b int64) bool {
			return CompareDates(iso(a), iso(b)) == -CompareDates(iso(b), iso(a))
		},
		gen.Int64Range(minUnix, maxUnix),
		gen.Int64Range(minUnix, maxUnix),
	))
	p.Property("transitive", prop.ForAll(
		func(a, b, c int64) bool {
			if CompareDates(iso(a), iso(b)) <= 0 && CompareDates(iso(b), iso(c)) <= 0 {
				return CompareDates(iso(a), iso(c)) <= 0
			}
			return true
		},
		gen.Int64Range(minUnix, maxUnix),
		gen.Int64Range(minUnix, maxUnix),
		gen.Int64Range(minUnix, maxUnix),
	))
	p.TestingRun(t)
}
