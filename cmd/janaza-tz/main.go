// Command janaza-tz prints the viewer zone as the formatter sees it, or formats one value
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"janaza/internal/core/datefmt"
	"janaza/internal/platform/logger"
)

type options struct {
	zone    string
	lang    string
	value   string
	pattern string
	mode    string
}

func main() {
	var o options
	flag.StringVar(&o.zone, "tz", "", "IANA zone of the viewer (default: resolved from the host)")
	flag.StringVar(&o.lang, "lang", "fr", "language for month and weekday names (fr|en)")
	flag.StringVar(&o.value, "value", "", "raw timestamp to format; prints zone debug info when empty")
	flag.StringVar(&o.pattern, "pattern", "", "output pattern, e.g. \"DD/MM/YYYY à HH:mm\"")
	flag.StringVar(&o.mode, "mode", "display", "display|utc|event|system")
	flag.Parse()

	logger.Init(logger.Options{Level: "warn", Format: "console", Service: "janaza-tz", Writer: os.Stderr})

	if err := run(os.Stdout, o); err != nil {
		fmt.Fprintln(os.Stderr, "janaza-tz:", err)
		os.Exit(2)
	}
}

func run(w io.Writer, o options) error {
	opts := []datefmt.Option{
		datefmt.WithLanguage(datefmt.MatchLanguage(o.lang)),
		datefmt.WithDiagnostics(datefmt.NewDiagnostics(logger.Named("datefmt"))),
	}
	if o.zone != "" {
		if _, ok := datefmt.LoadZone(o.zone); !ok {
			return fmt.Errorf("unknown time zone %q", o.zone)
		}
		opts = append(opts, datefmt.WithZone(o.zone))
	}
	f := datefmt.New(opts...)

	if o.value == "" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(f.Debug())
	}

	var out string
	switch o.mode {
	case "display":
		out = f.FormatDisplay(o.value, o.pattern)
	case "utc":
		out = f.FormatUTC(o.value, o.pattern)
	case "event":
		out = f.FormatEventLocal(o.value, o.pattern)
	case "system":
		out = f.FormatSystem(o.value, o.pattern)
	default:
		return fmt.Errorf("unknown mode %q (display|utc|event|system)", o.mode)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
