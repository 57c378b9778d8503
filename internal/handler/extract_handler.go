package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"extractd/internal/service"
)

// ExtractHandler handles the extraction endpoints.
type ExtractHandler struct {
	textService   service.TextExtractionService
	sheetsService service.SheetsExtractionService
	log           *zap.Logger
}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler(
	textService service.TextExtractionService,
	sheetsService service.SheetsExtractionService,
	log *zap.Logger,
) *ExtractHandler {
	return &ExtractHandler{
		textService:   textService,
		sheetsService: sheetsService,
		log:           log,
	}
}

// Text handles POST /api/v1/extract/text
// @Summary Extract structured data from text
// @Description Extract emails, phone numbers, dates, numbers, and URLs from free-form text
// @Tags extract
// @Accept json
// @Produce json
// @Param request body ExtractTextRequest true "Text and extraction type"
// @Success 200 {object} APIResponse{data=domain.ExtractionResult} "Extraction result"
// @Failure 400 {object} APIResponse "Malformed request or invalid extraction type"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 413 {object} APIResponse "Input too large"
// @Failure 422 {object} APIResponse "Empty input"
// @Security BearerAuth
// @Router /extract/text [post]
func (h *ExtractHandler) Text(c *gin.Context) {
	var input service.ExtractTextInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.textService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	RespondOK(c, result)
}

// Sheets handles POST /api/v1/extract/sheets
// @Summary Extract Google Sheets identifiers from a URL
// @Description Extract the 44-character document ID and numeric sheet IDs from a Google Sheets URL or bare document ID
// @Tags extract
// @Accept json
// @Produce json
// @Param request body ExtractSheetsRequest true "Google Sheets URL or document ID"
// @Success 200 {object} APIResponse{data=domain.SheetsExtractionResult} "Classification result; url_type=invalid when nothing matched"
// @Failure 400 {object} APIResponse "Malformed request"
// @Failure 401 {object} APIResponse "Unauthorized"
// @Failure 413 {object} APIResponse "Input too large"
// @Failure 422 {object} APIResponse "Empty input"
// @Security BearerAuth
// @Router /extract/sheets [post]
func (h *ExtractHandler) Sheets(c *gin.Context) {
	var input service.ExtractSheetsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.sheetsService.Extract(c.Request.Context(), input)
	if err != nil {
		HandleError(c, h.log, err)
		return
	}

	RespondOK(c, result)
}
