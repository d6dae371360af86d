// Package labels renders the small French display labels used by admin views
package labels

import (
	"strings"
	"unicode"
	"unicode/utf8"

	pstrings "janaza/internal/platform/strings"
)

const placeholder = "-"

// FullName joins first and last names, "-" when both are missing
func FullName(first, last *string) string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{first, last} {
		if v := pstrings.Deref(p); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return placeholder
	}
	return strings.Join(parts, " ")
}

// Initials returns the upper cased first letters, "?" when both names are missing
func Initials(first, last *string) string {
	var b strings.Builder
	for _, p := range []*string{first, last} {
		if r, _ := utf8.DecodeRuneInString(pstrings.Deref(p)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// Truncate cuts s to n runes and appends "...", "-" when s is missing
func Truncate(s *string, n int) string {
	v := pstrings.Deref(s)
	if v == "" {
		return placeholder
	}
	if utf8.RuneCountInString(v) <= n {
		return v
	}
	return string([]rune(v)[:n]) + "..."
}

// GenderLabel maps M and F to their labels
func GenderLabel(gender string) string {
	if gender == "M" {
		return "Homme"
	}
	return "Femme"
}

// RoleLabel maps a role to its label
func RoleLabel(role string) string {
	if role == "admin" {
		return "Administrateur"
	}
	return "Utilisateur"
}
