// Package config reads application settings from environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"janaza/internal/platform/logger"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_API_", "DATES_").
// New() reads unprefixed keys; Prefix scopes a module
type Conf struct{ prefix string }

// New creates a root Conf
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("DATES_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// value returns the trimmed variable and whether it carried anything
func (c Conf) value(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(k)))
	return v, v != ""
}

// fallback starts a warning about an unusable value
func (c Conf) fallback(k, v string) *zerolog.Event {
	return logger.Get().Warn().Str("key", c.key(k)).Str("value", v)
}

// MustString panics if the key is missing or blank
func (c Conf) MustString(key string) string {
	v, ok := c.value(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustPort returns a net/http addr like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string {
	return c.port(key, c.MustString(key))
}

// MayPort is MustPort with a default used when the key is blank
func (c Conf) MayPort(key, def string) string {
	v, ok := c.value(key)
	if !ok {
		return def
	}
	return c.port(key, strings.TrimPrefix(v, ":"))
}

func (c Conf) port(key, s string) string {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if v, ok := c.value(key); ok {
		return v
	}
	return def
}

// MayInt returns the value or def; invalid values are logged and replaced by def
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.value(key)
	if !ok {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	c.fallback(key, s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def; invalid values are logged and replaced by def
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.value(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	c.fallback(key, s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def; invalid values are logged and replaced by def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.value(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	c.fallback(key, s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.value(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case insensitive), def when blank.
// Any other value panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayZone returns the IANA zone name when it loads, "" when blank.
// Unknown zones are logged and ignored so the caller can resolve one from the host
func (c Conf) MayZone(key string) string {
	s, ok := c.value(key)
	if !ok {
		return ""
	}
	if _, err := time.LoadLocation(s); err != nil || s == "Local" {
		c.fallback(key, s).Msg("unknown time zone; ignoring")
		return ""
	}
	return s
}

// MayLanguage parses a BCP 47 tag, def when blank or invalid
func (c Conf) MayLanguage(key string, def language.Tag) language.Tag {
	s, ok := c.value(key)
	if !ok {
		return def
	}
	tag, err := language.Parse(s)
	if err != nil {
		c.fallback(key, s).Str("default", def.String()).Msg("invalid language tag; using default")
		return def
	}
	return tag
}
