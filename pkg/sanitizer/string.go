package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxHeaderLength bounds values interpolated into a subject line.
const MaxHeaderLength = 200

var (
	ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// RemoveControlChars drops ANSI escape sequences, NUL bytes and control
// characters other than '\n', '\r' and '\t'.
func RemoveControlChars(s string) string {
	s = ansiSequence.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine collapses every run of whitespace, line breaks included, into a
// single space and trims the result.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// MaxLength truncates s to at most n runes.
func MaxLength(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// HeaderValue makes s safe for a single header line such as Subject.
var HeaderValue = Compose(RemoveControlChars, SingleLine, Truncate(MaxHeaderLength))
