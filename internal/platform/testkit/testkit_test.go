package testkit

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "05/10/2025 à 18:30", "18:30")
}

func TestZone(t *testing.T) {
	loc := Zone(t, "Europe/Paris")
	_, off := time.Date(2025, 10, 5, 12, 0, 0, 0, loc).Zone()
	if off != 2*3600 {
		t.Fatalf("Paris offset in October = %d, want 7200", off)
	}
}

func TestClock(t *testing.T) {
	at := time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC)
	now := Clock(at)
	if !now().Equal(at) || !now().Equal(now()) {
		t.Fatalf("clock moved: %v", now())
	}
}
