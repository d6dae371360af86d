package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	lookupZone = func() string { return "Europe/Paris" }
	batchLimit = 200
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &lookupZone, func() string { return "Asia/Tokyo" })
		Swap(t, &batchLimit, 1)
		if lookupZone() != "Asia/Tokyo" || batchLimit != 1 {
			t.Fatalf("swap not applied: %q %d", lookupZone(), batchLimit)
		}
	})
	if lookupZone() != "Europe/Paris" || batchLimit != 200 {
		t.Fatalf("swap not restored: %q %d", lookupZone(), batchLimit)
	}
}

func TestSerial_NoInterleaving(t *testing.T) {
	var (
		mu  sync.Mutex
		seq []string
	)
	record := func(s string) {
		mu.Lock()
		seq = append(seq, s)
		mu.Unlock()
	}

	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				record(name + "+")
				time.Sleep(20 * time.Millisecond)
				record(name + "-")
			})
		}
	})

	if len(seq) != 4 {
		t.Fatalf("seq = %v", seq)
	}
	// each start is immediately followed by its own end
	for i := 0; i < 4; i += 2 {
		if seq[i][:1] != seq[i+1][:1] || seq[i][1] != '+' || seq[i+1][1] != '-' {
			t.Fatalf("interleaved: %v", seq)
		}
	}
}
