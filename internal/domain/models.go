package domain

// ExtractionResult is the outcome of a text extraction request. It is a
// per-request value: constructed by the service, serialized, and discarded.
type ExtractionResult struct {
	Success        bool                `json:"success"`
	ExtractedData  map[string][]string `json:"extracted_data"`
	OriginalText   string              `json:"original_text"`
	ExtractionType ExtractionType      `json:"extraction_type"`
	Timestamp      string              `json:"timestamp"`
}

// SheetsExtractionResult is the outcome of a Google Sheets URL extraction.
// DocumentID is nil when the input did not classify as any known URL shape.
type SheetsExtractionResult struct {
	Success     bool     `json:"success"`
	DocumentID  *string  `json:"document_id"`
	SheetIDs    []string `json:"sheet_ids"`
	OriginalURL string   `json:"original_url"`
	URLType     URLType  `json:"url_type"`
	Timestamp   string   `json:"timestamp"`
}
