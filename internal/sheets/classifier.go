// Package sheets classifies Google Sheets URLs and extracts document and
// sheet identifiers from them.
package sheets

import (
	"regexp"
	"strings"

	"extractd/internal/domain"
)

// DocumentIDLength is the length of a Google Sheets spreadsheet identifier.
const DocumentIDLength = 44

var (
	bareIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{44}$`)
	docIDPattern   = regexp.MustCompile(`spreadsheets/d/([a-zA-Z0-9_-]+)`)
	schemePattern  = regexp.MustCompile(`(?i)^https?://`)
	gidPattern     = regexp.MustCompile(`gid=([^&#\s;]*)`)
	numericPattern = regexp.MustCompile(`^\d+$`)
)

// Classification is the classifier outcome, without response metadata.
type Classification struct {
	DocumentID *string
	SheetIDs   []string
	Type       domain.URLType
}

// Classify determines which URL shape the input matches and extracts the
// document id and any sheet ids. Precedence, first match wins:
//
//  1. the entire input is a 44-character id   -> document_id
//  2. spreadsheets/d/<44-char id> with scheme -> full_url, or
//     full_url_with_sheets when gid params are present
//  3. the same shape without http(s)://       -> partial_url
//  4. anything else                           -> invalid
//
// A candidate id segment longer than 44 characters is rejected, not
// truncated.
func Classify(url string) Classification {
	trimmed := strings.TrimSpace(url)

	if bareIDPattern.MatchString(trimmed) {
		id := trimmed
		return Classification{
			DocumentID: &id,
			SheetIDs:   []string{},
			Type:       domain.URLTypeDocumentID,
		}
	}

	m := docIDPattern.FindStringSubmatch(trimmed)
	if m == nil || len(m[1]) != DocumentIDLength {
		return Classification{
			SheetIDs: []string{},
			Type:     domain.URLTypeInvalid,
		}
	}
	id := m[1]

	sheetIDs := SheetIDs(trimmed)
	urlType := domain.URLTypePartialURL
	switch {
	case len(sheetIDs) > 0:
		urlType = domain.URLTypeFullURLWithSheets
	case schemePattern.MatchString(trimmed):
		urlType = domain.URLTypeFullURL
	}

	return Classification{
		DocumentID: &id,
		SheetIDs:   sheetIDs,
		Type:       urlType,
	}
}

// SheetIDs collects numeric gid values from the query string and fragment,
// preserving order of first appearance and dropping duplicates. Non-numeric
// gid values are ignored.
func SheetIDs(url string) []string {
	ids := []string{}
	seen := make(map[string]bool)
	for _, m := range gidPattern.FindAllStringSubmatch(url, -1) {
		gid := m[1]
		if !numericPattern.MatchString(gid) || seen[gid] {
			continue
		}
		seen[gid] = true
		ids = append(ids, gid)
	}
	return ids
}
