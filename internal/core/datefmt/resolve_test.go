package datefmt

import (
	"errors"
	"os"
	"testing"
	"time"

	kit "janaza/internal/platform/testkit"
)

var errNope = errors.New("nope")

// isolate cuts every probe so each test opts into exactly one source
func isolate(t *testing.T) {
	t.Helper()
	kit.Serial(t)
	kit.Swap(t, &lookupEnv, func(string) (string, bool) { return "", false })
	kit.Swap(t, &readFile, func(string) ([]byte, error) { return nil, errNope })
	kit.Swap(t, &readLink, func(string) (string, error) { return "", errNope })
}

func TestResolveViewerTimezone_Env(t *testing.T) {
	isolate(t)
	kit.Swap(t, &lookupEnv, func(k string) (string, bool) {
		if k == "TZ" {
			return ":Asia/Tokyo", true
		}
		return "", false
	})
	if got := ResolveViewerTimezone(); got != "Asia/Tokyo" {
		t.Fatalf("zone = %q, want Asia/Tokyo", got)
	}
}

func TestResolveViewerTimezone_File(t *testing.T) {
	isolate(t)
	kit.Swap(t, &lookupEnv, func(string) (string, bool) { return "Local", true })
	kit.Swap(t, &readFile, func(name string) ([]byte, error) {
		if name != timezoneFile {
			return nil, os.ErrNotExist
		}
		return []byte("Africa/Dakar\n"), nil
	})
	if got := ResolveViewerTimezone(); got != "Africa/Dakar" {
		t.Fatalf("zone = %q, want Africa/Dakar", got)
	}
}

func TestResolveViewerTimezone_Link(t *testing.T) {
	isolate(t)
	kit.Swap(t, &readLink, func(string) (string, error) {
		return "/usr/share/zoneinfo/America/New_York", nil
	})
	if got := ResolveViewerTimezone(); got != "America/New_York" {
		t.Fatalf("zone = %q, want America/New_York", got)
	}
}

func TestResolveViewerTimezone_Fallback(t *testing.T) {
	t.Run("nothing configured", func(t *testing.T) {
		isolate(t)
		if got := ResolveViewerTimezone(); got != FallbackZone {
			t.Fatalf("zone = %q, want %q", got, FallbackZone)
		}
	})
	t.Run("garbage everywhere", func(t *testing.T) {
		isolate(t)
		kit.Swap(t, &lookupEnv, func(string) (string, bool) { return "Mars/Olympus", true })
		kit.Swap(t, &readFile, func(string) ([]byte, error) { return []byte("   "), nil })
		kit.Swap(t, &readLink, func(string) (string, error) { return "/etc/elsewhere", nil })
		if got := ResolveViewerTimezone(); got != FallbackZone {
			t.Fatalf("zone = %q, want %q", got, FallbackZone)
		}
	})
	t.Run("loader broken", func(t *testing.T) {
		isolate(t)
		kit.Swap(t, &lookupEnv, func(string) (string, bool) { return "Europe/Berlin", true })
		kit.Swap(t, &loadLocation, func(string) (*time.Location, error) { return nil, errNope })
		if got := ResolveViewerTimezone(); got != FallbackZone {
			t.Fatalf("zone = %q, want %q", got, FallbackZone)
		}
	})
}

func TestNew_ResolvesOnceAndSurvivesMissingTzdata(t *testing.T) {
	isolate(t)
	kit.Swap(t, &loadLocation, func(string) (*time.Location, error) { return nil, errNope })
	f := New()
	// the label follows the location actually used
	if f.Zone() != "UTC" {
		t.Fatalf("zone = %q, want UTC", f.Zone())
	}
	if f.Location() != time.UTC {
		t.Fatalf("location = %v, want UTC", f.Location())
	}
	if got := f.Debug().Timezone; got != "UTC" {
		t.Fatalf("debug zone = %q, want UTC", got)
	}
}

func TestLoadZone(t *testing.T) {
	if _, ok := LoadZone(""); ok {
		t.Fatal("empty name should not load")
	}
	if _, ok := LoadZone("Local"); ok {
		t.Fatal("Local should not load")
	}
	if _, ok := LoadZone("Not/AZone"); ok {
		t.Fatal("unknown zone should not load")
	}
	loc, ok := LoadZone(" Europe/Paris ")
	if !ok || loc.String() != "Europe/Paris" {
		t.Fatalf("LoadZone = %v %v", loc, ok)
	}
}
