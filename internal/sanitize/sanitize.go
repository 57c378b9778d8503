// Package sanitize normalizes and validates raw input before any pattern
// matching runs over it.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"extractd/internal/domain"
)

// Pre-compiled patterns for dangerous content and whitespace normalization.
var (
	schemePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)data:text/html`),
		regexp.MustCompile(`(?i)vbscript:`),
	}
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Clean validates and sanitizes a raw input string. Length bounds are checked
// against the raw input (in runes) before any rewriting. The returned string
// is HTML-escaped, free of dangerous URL schemes, and whitespace-normalized.
//
// Clean is idempotent: Clean(Clean(x)) == Clean(x) for any accepted x.
func Clean(raw string, maxLen int) (string, error) {
	if raw == "" {
		return "", domain.ErrEmptyInput
	}
	if maxLen > 0 && utf8.RuneCountInString(raw) > maxLen {
		return "", domain.ErrInputTooLong
	}

	// Unescape before escaping so already-sanitized input round-trips
	// unchanged instead of double-escaping ampersands.
	s := html.EscapeString(html.UnescapeString(raw))

	// Strip dangerous schemes until stable; a single pass can leave a new
	// occurrence behind ("javajavascript:script:").
	for _, re := range schemePatterns {
		for re.MatchString(s) {
			s = re.ReplaceAllString(s, "")
		}
	}

	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s), nil
}
