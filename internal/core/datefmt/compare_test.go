package datefmt

import (
	"testing"
	"time"
)

func TestCompareDates(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2025-10-05T10:00:00.000Z", "2025-10-05T11:00:00.000Z", -1},
		{"2025-10-05T11:00:00.000Z", "2025-10-05T10:00:00.000Z", 1},
		{"2025-10-05T10:00:00.000Z", "2025-10-05T12:00:00+02:00", 0},
		{"2025-10-05", "2025-10-05T00:00:00Z", 0},
		{"", "2025-10-05T10:00:00Z", 0},
		{"2025-10-05T10:00:00Z", "", 0},
		{"garbage", "2025-10-05T10:00:00Z", 0},
		{"2025-10-05T10:00:00Z", "garbage", 0},
	}
	for _, c := range cases {
		if got := CompareDates(c.a, c.b); got != c.want {
			t.Fatalf("CompareDates(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestIsPast(t *testing.T) {
	d := NewDiagnostics(nil)
	f := newTest(time.UTC, WithDiagnostics(d))
	if !f.IsPast("2025-10-05T11:59:59.999Z") {
		t.Fatal("a second before now is past")
	}
	if f.IsPast("2025-10-05T12:00:00.000Z") {
		t.Fatal("now is not past")
	}
	if f.IsPast("2026-01-01T00:00:00Z") {
		t.Fatal("future is not past")
	}
	if f.IsPast("") || f.IsPast("soon") {
		t.Fatal("empty or invalid is not past")
	}
	if got := d.Snapshot().Invalid; got != 1 {
		t.Fatalf("invalid = %d, want 1", got)
	}
}
