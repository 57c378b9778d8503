package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"extractd/internal/domain"
	"extractd/internal/service"
)

// MockSheetsExtractionService is a mock implementation of service.SheetsExtractionService.
type MockSheetsExtractionService struct {
	mock.Mock
}

func (m *MockSheetsExtractionService) Extract(ctx context.Context, input service.ExtractSheetsInput) (*domain.SheetsExtractionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SheetsExtractionResult), args.Error(1)
}
