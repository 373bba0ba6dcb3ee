package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvetax/transcript-service/dto"
	"github.com/resolvetax/transcript-service/store"
)

// FeedbackHandler records reviewer verdicts on individual extractions.
type FeedbackHandler struct {
	store *store.Store
}

func NewFeedbackHandler(st *store.Store) *FeedbackHandler {
	return &FeedbackHandler{store: st}
}

// RecordFeedback handles POST /api/v1/feedback/extraction.
func (h *FeedbackHandler) RecordFeedback(c *gin.Context) {
	var request dto.ExtractionFeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid feedback payload", err)
		return
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	id, err := h.store.AddFeedback(c.Request.Context(), request.ExtractionID,
		request.IsCorrect, request.CorrectValue, request.Comments)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to record feedback", err)
		return
	}

	log.Printf("Recorded feedback %s for extraction %s", id, request.ExtractionID)
	c.JSON(http.StatusOK, dto.FeedbackResponse{FeedbackID: id, Recorded: true})
}

// sendError sends a structured error response
func (h *FeedbackHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "FEEDBACK_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
