package service

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validEmail(s string) bool {
	return emailRx.MatchString(s)
}

// isAlphabetic reports whether s consists only of letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// containsLetter reports whether s has at least one letter.
func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// runeLen counts characters, not bytes; field limits are character limits.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
