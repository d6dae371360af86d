package datefmt

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

func TestDiagnostics_NilSafe(t *testing.T) {
	var d *Diagnostics
	d.record("op", ReasonInvalid, "x", "", "UTC")
	if s := d.Snapshot(); s != (Snapshot{}) {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestDiagnostics_ConcurrentCount(t *testing.T) {
	var buf safeBuffer
	l := zerolog.New(&buf)
	d := NewDiagnostics(&l)
	f := newTest(nil, WithZone("UTC"), WithDiagnostics(d))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.FormatDisplay("not a date", "")
			_ = f.FormatDisplay("2025-10-05T18:00:00.000Z", "[")
		}()
	}
	wg.Wait()

	s := d.Snapshot()
	if s.Invalid != 50 || s.Pattern != 50 {
		t.Fatalf("snapshot = %+v, want 50/50", s)
	}
	if n := strings.Count(buf.String(), "timestamp not formatted"); n != 100 {
		t.Fatalf("log lines = %d, want 100", n)
	}
	if !strings.Contains(buf.String(), `"zone":"UTC"`) {
		t.Fatalf("zone missing from %s", buf.String())
	}
}

type safeBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *safeBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}
