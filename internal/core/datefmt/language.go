package datefmt

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fr"
	"golang.org/x/text/language"
)

// Languages lists the supported display languages, French first as the default
var Languages = []language.Tag{language.French, language.English}

var (
	matcher = language.NewMatcher(Languages)

	namesFR = fr.New()
	namesEN = en.New()
)

// MatchLanguage picks a supported language from an Accept-Language value or a bare tag.
// Anything unparsable or unmatched yields French
func MatchLanguage(accept string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return language.French
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.French
	}
	return Languages[idx]
}

// namesFor returns month and weekday names for lang
func namesFor(lang language.Tag) locales.Translator {
	if isEnglish(lang) {
		return namesEN
	}
	return namesFR
}

func isEnglish(lang language.Tag) bool {
	base, _ := lang.Base()
	return base.String() == "en"
}
