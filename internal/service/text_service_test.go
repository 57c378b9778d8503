package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extractd/internal/domain"
)

func TestTextService_Extract_Success(t *testing.T) {
	svc := NewTextExtractionService(10000)

	result, err := svc.Extract(context.Background(), ExtractTextInput{
		Text:           "Contact john@example.com or call (555) 123-4567",
		ExtractionType: "email_phone",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, domain.ExtractionEmailPhone, result.ExtractionType)
	assert.Equal(t, "Contact john@example.com or call (555) 123-4567", result.OriginalText)
	assert.Equal(t, []string{"john@example.com"}, result.ExtractedData[domain.CategoryEmails])
	assert.Equal(t, []string{"(555) 123-4567"}, result.ExtractedData[domain.CategoryPhoneNumbers])

	_, err = time.Parse(time.RFC3339, result.Timestamp)
	assert.NoError(t, err, "timestamp must be ISO-8601")
}

func TestTextService_Extract_DefaultType(t *testing.T) {
	svc := NewTextExtractionService(10000)

	result, err := svc.Extract(context.Background(), ExtractTextInput{Text: "some text"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionEmailPhone, result.ExtractionType)
}

func TestTextService_Extract_TypeNormalized(t *testing.T) {
	svc := NewTextExtractionService(10000)

	result, err := svc.Extract(context.Background(), ExtractTextInput{
		Text:           "Meeting on 12/25/2023",
		ExtractionType: "  DATES  ",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExtractionDates, result.ExtractionType)
	assert.Equal(t, []string{"12/25/2023"}, result.ExtractedData[domain.CategoryDates])
}

func TestTextService_Extract_InvalidType(t *testing.T) {
	svc := NewTextExtractionService(10000)

	result, err := svc.Extract(context.Background(), ExtractTextInput{
		Text:           "some text",
		ExtractionType: "invalid_type",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidExtractionType)
	assert.Nil(t, result)
}

func TestTextService_Extract_EmptyText(t *testing.T) {
	svc := NewTextExtractionService(10000)

	result, err := svc.Extract(context.Background(), ExtractTextInput{Text: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Nil(t, result)
}

func TestTextService_Extract_LengthBoundary(t *testing.T) {
	svc := NewTextExtractionService(50)

	_, err := svc.Extract(context.Background(), ExtractTextInput{
		Text: strings.Repeat("a", 50),
	})
	assert.NoError(t, err)

	result, err := svc.Extract(context.Background(), ExtractTextInput{
		Text: strings.Repeat("a", 51),
	})
	assert.ErrorIs(t, err, domain.ErrInputTooLong)
	assert.Nil(t, result)
}

func TestTextService_Extract_SanitizesEchoedText(t *testing.T) {
	svc := NewTextExtractionService(10000)

	result, err := svc.Extract(context.Background(), ExtractTextInput{
		Text:           "Contact <script>alert('xss')</script> john@example.com",
		ExtractionType: "email_phone",
	})
	require.NoError(t, err)
	assert.NotContains(t, result.OriginalText, "<script>")
	assert.Contains(t, result.ExtractedData[domain.CategoryEmails], "john@example.com")
}
