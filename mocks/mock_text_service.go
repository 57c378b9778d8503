package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"extractd/internal/domain"
	"extractd/internal/service"
)

// MockTextExtractionService is a mock implementation of service.TextExtractionService.
type MockTextExtractionService struct {
	mock.Mock
}

func (m *MockTextExtractionService) Extract(ctx context.Context, input service.ExtractTextInput) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResult), args.Error(1)
}
