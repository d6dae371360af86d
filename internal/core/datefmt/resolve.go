package datefmt

import (
	"os"
	"strings"
	"time"
)

// FallbackZone is used when the environment does not yield a loadable zone
const FallbackZone = "Europe/Paris"

const (
	timezoneFile  = "/etc/timezone"
	localtimeLink = "/etc/localtime"
	zoneinfoDir   = "zoneinfo/"
)

// seams, swapped in tests
var (
	lookupEnv    = os.LookupEnv
	readFile     = os.ReadFile
	readLink     = os.Readlink
	loadLocation = time.LoadLocation
)

// ResolveViewerTimezone returns the IANA zone of the running environment or FallbackZone.
// It never returns an empty string
func ResolveViewerTimezone() string {
	for _, probe := range []func() string{zoneFromEnv, zoneFromFile, zoneFromLink} {
		if name := probe(); loadable(name) {
			return name
		}
	}
	return FallbackZone
}

func zoneFromEnv() string {
	v, ok := lookupEnv("TZ")
	if !ok {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(v), ":")
}

func zoneFromFile() string {
	b, err := readFile(timezoneFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func zoneFromLink() string {
	target, err := readLink(localtimeLink)
	if err != nil {
		return ""
	}
	i := strings.LastIndex(target, zoneinfoDir)
	if i < 0 {
		return ""
	}
	return target[i+len(zoneinfoDir):]
}

// loadable rejects "" and "Local" which time.LoadLocation accepts without naming a zone
func loadable(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	loc, err := loadLocation(name)
	return err == nil && loc != nil
}

// LoadZone loads an IANA zone, rejecting the names that do not identify one
func LoadZone(name string) (*time.Location, bool) {
	name = strings.TrimSpace(name)
	if !loadable(name) {
		return nil, false
	}
	loc, err := loadLocation(name)
	if err != nil {
		return nil, false
	}
	return loc, true
}
