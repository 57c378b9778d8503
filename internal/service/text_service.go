package service

import (
	"context"
	"time"

	"extractd/internal/domain"
	"extractd/internal/extract"
	"extractd/internal/sanitize"
)

// ExtractTextInput is the DTO for a text extraction request.
type ExtractTextInput struct {
	Text           string `json:"text"`
	ExtractionType string `json:"extraction_type"`
}

// TextExtractionService defines the text extraction contract.
type TextExtractionService interface {
	Extract(ctx context.Context, input ExtractTextInput) (*domain.ExtractionResult, error)
}

type textExtractionService struct {
	maxTextLength int
}

// NewTextExtractionService creates a new TextExtractionService implementation.
func NewTextExtractionService(maxTextLength int) TextExtractionService {
	return &textExtractionService{maxTextLength: maxTextLength}
}

func (s *textExtractionService) Extract(ctx context.Context, input ExtractTextInput) (result *domain.ExtractionResult, err error) {
	kind, err := domain.ParseExtractionType(input.ExtractionType)
	if err != nil {
		return nil, err
	}

	clean, err := sanitize.Clean(input.Text, s.maxTextLength)
	if err != nil {
		return nil, err
	}

	// The matchers are deterministic, but a fault here must never reach the
	// caller as a raw panic.
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, domain.ErrInternal
		}
	}()

	return &domain.ExtractionResult{
		Success:        true,
		ExtractedData:  extract.Extract(clean, kind),
		OriginalText:   clean,
		ExtractionType: kind,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}
