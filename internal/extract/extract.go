// Package extract pulls structured substrings out of sanitized text using a
// fixed set of compiled patterns.
package extract

import (
	"regexp"

	"extractd/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// North-American formats: (NNN) NNN-NNNN, NNN-NNN-NNNN, NNN.NNN.NNNN,
	// NNN NNN NNNN, bare 10-digit runs, each with an optional +1 prefix.
	phonePattern = regexp.MustCompile(`(?:\+1[\s.-]?)?(?:\(\d{3}\)\s?\d{3}[\s.-]\d{4}|\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b|\b\d{10}\b)`)

	// MM/DD/YYYY, MM-DD-YYYY, YYYY-MM-DD, and "Month DD, YYYY". Long month
	// names come before their abbreviations so the full name wins.
	datePattern = regexp.MustCompile(`\b(?:\d{1,2}[/-]\d{1,2}[/-]\d{4}|\d{4}-\d{1,2}-\d{1,2}|(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept?|Oct|Nov|Dec)\.?\s\d{1,2},?\s\d{4})\b`)

	numberPattern = regexp.MustCompile(`-?\d{1,3}(?:,\d{3})+(?:\.\d+)?|-?\d+(?:\.\d+)?`)

	urlPattern = regexp.MustCompile(`https?://[^\s<>]+|\bwww\.[^\s<>]+`)
)

// Emails returns all email addresses in order of appearance.
func Emails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// PhoneNumbers returns all phone numbers in order of appearance.
func PhoneNumbers(text string) []string {
	return phonePattern.FindAllString(text, -1)
}

// Dates returns all dates in order of appearance.
func Dates(text string) []string {
	return datePattern.FindAllString(text, -1)
}

// Numbers returns standalone integers and decimals. Digit runs already
// consumed by a date or phone match are masked out first, so requesting
// numbers on "03/04/2024" does not yield 3, 4 and 2024.
func Numbers(text string) []string {
	masked := []byte(text)
	for _, re := range []*regexp.Regexp{datePattern, phonePattern} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			for i := loc[0]; i < loc[1]; i++ {
				masked[i] = ' '
			}
		}
	}
	return numberPattern.FindAllString(string(masked), -1)
}

// URLs returns http(s) and bare www URLs, each ending at the first
// whitespace or angle bracket.
func URLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// Extract runs the categories selected by kind over text. Requested
// categories always appear in the result, with an empty slice when nothing
// matched. Matches keep their order of appearance; duplicates are preserved.
func Extract(text string, kind domain.ExtractionType) map[string][]string {
	out := make(map[string][]string)

	if kind == domain.ExtractionEmailPhone || kind == domain.ExtractionAll {
		out[domain.CategoryEmails] = orEmpty(Emails(text))
		out[domain.CategoryPhoneNumbers] = orEmpty(PhoneNumbers(text))
	}
	if kind == domain.ExtractionDates || kind == domain.ExtractionAll {
		out[domain.CategoryDates] = orEmpty(Dates(text))
	}
	if kind == domain.ExtractionNumbers || kind == domain.ExtractionAll {
		out[domain.CategoryNumbers] = orEmpty(Numbers(text))
	}
	if kind == domain.ExtractionURLs || kind == domain.ExtractionAll {
		out[domain.CategoryURLs] = orEmpty(URLs(text))
	}

	return out
}

// orEmpty keeps requested categories serializable as [] instead of null.
func orEmpty(matches []string) []string {
	if matches == nil {
		return []string{}
	}
	return matches
}
