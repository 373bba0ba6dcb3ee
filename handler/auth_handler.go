package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/dto"
)

// AuthHandler stores replayed portal sessions.
type AuthHandler struct {
	sessions *client.SessionStore
}

func NewAuthHandler(sessions *client.SessionStore) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// StoreCookies handles POST /api/v1/auth/cookies: staff paste the cookie
// set captured from an authenticated portal tab.
func (h *AuthHandler) StoreCookies(c *gin.Context) {
	var request dto.StoreCookiesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid cookie payload", err)
		return
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.sessions.Put(request.Cookies, request.UserAgent); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to store session", err)
		return
	}

	log.Printf("Stored portal session with %d cookies", len(request.Cookies))
	c.JSON(http.StatusOK, gin.H{"stored": true, "cookies": len(request.Cookies)})
}

// sendError sends a structured error response
func (h *AuthHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "AUTH_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
