package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvetax/transcript-service/dto"
	"github.com/resolvetax/transcript-service/service"
)

// AnalysisHandler serves the WI, AT and TI analysis endpoints.
type AnalysisHandler struct {
	transcriptService *service.TranscriptService
	atService         *service.ATService
	tiService         *service.TIService
}

func NewAnalysisHandler(
	transcriptService *service.TranscriptService,
	atService *service.ATService,
	tiService *service.TIService,
) *AnalysisHandler {
	return &AnalysisHandler{
		transcriptService: transcriptService,
		atService:         atService,
		tiService:         tiService,
	}
}

// AnalyzeWI handles GET /api/v1/analysis/wi/:caseID. The optional
// include_tps_analysis and filing_status query parameters turn on the
// taxpayer/spouse report.
func (h *AnalysisHandler) AnalyzeWI(c *gin.Context) {
	caseID := c.Param("caseID")
	includeTPS := c.Query("include_tps_analysis") == "true"
	filingStatus := c.Query("filing_status")
	log.Printf("Received WI analysis request for case %s", caseID)

	response, err := h.transcriptService.AnalyzeWI(c.Request.Context(), caseID, includeTPS, filingStatus)
	if err != nil {
		h.sendAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// DebugWI handles GET /api/v1/analysis/wi/debug/:caseID.
func (h *AnalysisHandler) DebugWI(c *gin.Context) {
	caseID := c.Param("caseID")
	log.Printf("Received WI debug request for case %s", caseID)

	response, err := h.transcriptService.DebugWI(c.Request.Context(), caseID)
	if err != nil {
		h.sendAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// AnalyzeAT handles GET /api/v1/analysis/at/:caseID.
func (h *AnalysisHandler) AnalyzeAT(c *gin.Context) {
	caseID := c.Param("caseID")
	filingStatus := c.Query("filing_status")
	log.Printf("Received AT analysis request for case %s", caseID)

	response, err := h.atService.Analyze(c.Request.Context(), caseID, filingStatus)
	if err != nil {
		h.sendAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// AnalyzeTI handles GET /api/v1/analysis/ti/:caseID.
func (h *AnalysisHandler) AnalyzeTI(c *gin.Context) {
	caseID := c.Param("caseID")
	log.Printf("Received TI analysis request for case %s", caseID)

	response, err := h.tiService.Analyze(c.Request.Context(), caseID)
	if err != nil {
		h.sendAnalysisError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// ParseTranscript handles POST /api/v1/parse/transcript: a direct upload
// of one transcript file, bypassing the portal.
func (h *AnalysisHandler) ParseTranscript(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A transcript file is required", err)
		return
	}
	log.Printf("Received direct parse request for %s", fileHeader.Filename)

	response, err := h.transcriptService.ParseUpload(fileHeader)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to parse transcript", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// sendAnalysisError maps the service's sentinel errors to HTTP statuses.
func (h *AnalysisHandler) sendAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dto.ErrNoCookies), errors.Is(err, dto.ErrAuthExpired):
		h.sendError(c, http.StatusUnauthorized, "Portal authentication required", err)
	case errors.Is(err, dto.ErrNoWIFiles), errors.Is(err, dto.ErrNoATFiles), errors.Is(err, dto.ErrNoTIFiles):
		h.sendError(c, http.StatusNotFound, "No matching documents for this case", err)
	default:
		h.sendError(c, http.StatusInternalServerError, "Analysis failed", err)
	}
}

// sendError sends a structured error response
func (h *AnalysisHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
