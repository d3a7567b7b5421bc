// Package email derives display values from email addresses. Party
// registration accepts an email without a name and fills the name in from
// the address local part.
package email

import (
	"strings"
	"unicode"
)

// DeriveNameFromEmail splits the local part of an address into a first and
// last name. Single-token local parts get "User" as the last name; an
// unusable address yields ("User", "User").
func DeriveNameFromEmail(email string) (string, string) {
	// An address starting with '@' has an empty local part and falls through
	// to the unusable-address default.
	localPart := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
