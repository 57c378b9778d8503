package service

import (
	"context"
	"time"

	"extractd/internal/domain"
	"extractd/internal/sanitize"
	"extractd/internal/sheets"
)

// ExtractSheetsInput is the DTO for a Google Sheets URL extraction request.
type ExtractSheetsInput struct {
	URL string `json:"url"`
}

// SheetsExtractionService defines the Sheets URL extraction contract.
type SheetsExtractionService interface {
	Extract(ctx context.Context, input ExtractSheetsInput) (*domain.SheetsExtractionResult, error)
}

type sheetsExtractionService struct {
	maxURLLength int
}

// NewSheetsExtractionService creates a new SheetsExtractionService implementation.
func NewSheetsExtractionService(maxURLLength int) SheetsExtractionService {
	return &sheetsExtractionService{maxURLLength: maxURLLength}
}

func (s *sheetsExtractionService) Extract(ctx context.Context, input ExtractSheetsInput) (result *domain.SheetsExtractionResult, err error) {
	clean, err := sanitize.Clean(input.URL, s.maxURLLength)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = nil, domain.ErrInternal
		}
	}()

	cls := sheets.Classify(clean)

	// A classification miss is an expected outcome, not a fault: the result
	// carries success=false and url_type=invalid with a 200 response.
	return &domain.SheetsExtractionResult{
		Success:     cls.DocumentID != nil,
		DocumentID:  cls.DocumentID,
		SheetIDs:    cls.SheetIDs,
		OriginalURL: clean,
		URLType:     cls.Type,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}
