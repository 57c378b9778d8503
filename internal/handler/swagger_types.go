package handler

// Swagger type definitions for API documentation.

// ExtractTextRequest represents the text extraction request body.
type ExtractTextRequest struct {
	Text           string `json:"text" example:"Contact john@example.com or call (555) 123-4567"`
	ExtractionType string `json:"extraction_type" example:"email_phone" enums:"email_phone,dates,numbers,urls,all"`
}

// ExtractSheetsRequest represents the Sheets URL extraction request body.
type ExtractSheetsRequest struct {
	URL string `json:"url" example:"https://docs.google.com/spreadsheets/d/12itafHpvKAvPWUWl9XWtNJfG9T4kMw0sxqz9MFv0Xdk/edit?gid=1058109381"`
}
