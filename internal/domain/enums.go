package domain

import "strings"

// ExtractionType selects which pattern categories run over the input text.
type ExtractionType string

const (
	ExtractionEmailPhone ExtractionType = "email_phone"
	ExtractionDates      ExtractionType = "dates"
	ExtractionNumbers    ExtractionType = "numbers"
	ExtractionURLs       ExtractionType = "urls"
	ExtractionAll        ExtractionType = "all"
)

// AllowedExtractionTypes is the set of accepted extraction_type values.
var AllowedExtractionTypes = map[ExtractionType]bool{
	ExtractionEmailPhone: true,
	ExtractionDates:      true,
	ExtractionNumbers:    true,
	ExtractionURLs:       true,
	ExtractionAll:        true,
}

// ParseExtractionType normalizes and validates an extraction_type value.
// An empty value falls back to email_phone.
func ParseExtractionType(s string) (ExtractionType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ExtractionEmailPhone, nil
	}
	t := ExtractionType(s)
	if !AllowedExtractionTypes[t] {
		return "", ErrInvalidExtractionType
	}
	return t, nil
}

// URLType classifies the shape of a Google Sheets URL input.
type URLType string

const (
	URLTypeDocumentID        URLType = "document_id"
	URLTypeFullURL           URLType = "full_url"
	URLTypeFullURLWithSheets URLType = "full_url_with_sheets"
	URLTypePartialURL        URLType = "partial_url"
	URLTypeInvalid           URLType = "invalid"
)

// Extraction category keys used in ExtractionResult.ExtractedData.
const (
	CategoryEmails       = "emails"
	CategoryPhoneNumbers = "phone_numbers"
	CategoryDates        = "dates"
	CategoryNumbers      = "numbers"
	CategoryURLs         = "urls"
)
