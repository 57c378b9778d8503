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

const testDocID = "12itafHpvKAvPWUWl9XWtNJfG9T4kMw0sxqz9MFv0Xdk"

func TestSheetsService_Extract_FullURL(t *testing.T) {
	svc := NewSheetsExtractionService(2048)

	result, err := svc.Extract(context.Background(), ExtractSheetsInput{
		URL: "https://docs.google.com/spreadsheets/d/" + testDocID + "/edit?gid=1058109381#gid=1058109381",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.NotNil(t, result.DocumentID)
	assert.Equal(t, testDocID, *result.DocumentID)
	assert.Equal(t, []string{"1058109381"}, result.SheetIDs)
	assert.Equal(t, domain.URLTypeFullURLWithSheets, result.URLType)

	_, err = time.Parse(time.RFC3339, result.Timestamp)
	assert.NoError(t, err, "timestamp must be ISO-8601")
}

func TestSheetsService_Extract_InvalidURLIsNotAnError(t *testing.T) {
	svc := NewSheetsExtractionService(2048)

	result, err := svc.Extract(context.Background(), ExtractSheetsInput{URL: "not a valid url"})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Nil(t, result.DocumentID)
	assert.Equal(t, []string{}, result.SheetIDs)
	assert.Equal(t, domain.URLTypeInvalid, result.URLType)
	assert.Equal(t, "not a valid url", result.OriginalURL)
}

func TestSheetsService_Extract_EmptyURL(t *testing.T) {
	svc := NewSheetsExtractionService(2048)

	result, err := svc.Extract(context.Background(), ExtractSheetsInput{URL: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Nil(t, result)
}

func TestSheetsService_Extract_LengthBoundary(t *testing.T) {
	svc := NewSheetsExtractionService(2048)

	base := "https://docs.google.com/spreadsheets/d/" + testDocID + "/edit#"
	atLimit := base + strings.Repeat("a", 2048-len(base))

	result, err := svc.Extract(context.Background(), ExtractSheetsInput{URL: atLimit})
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = svc.Extract(context.Background(), ExtractSheetsInput{URL: atLimit + "a"})
	assert.ErrorIs(t, err, domain.ErrInputTooLong)
	assert.Nil(t, result)
}

func TestSheetsService_Extract_SanitizesEchoedURL(t *testing.T) {
	svc := NewSheetsExtractionService(2048)

	result, err := svc.Extract(context.Background(), ExtractSheetsInput{
		URL: "https://docs.google.com/spreadsheets/d/" + testDocID + "/edit?<script>alert('xss')</script>",
	})
	require.NoError(t, err)

	assert.NotContains(t, result.OriginalURL, "<script>")
	require.NotNil(t, result.DocumentID)
	assert.Equal(t, testDocID, *result.DocumentID)
}
