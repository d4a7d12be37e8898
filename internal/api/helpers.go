package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/document"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/resolver"
)

// respondError sends a JSON error response.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondBadRequest sends a 400 with message.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondInternalError sends a 500 with message.
func respondInternalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, message)
}

// respondBindError maps a request body error to 413 or 400.
func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respondError(c, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}
	respondBadRequest(c, "Invalid request payload: "+err.Error())
}

// respondDocumentError maps a document or request precondition failure to a status code.
func respondDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, document.ErrDocumentTooLarge):
		respondError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, document.ErrMalformedDocument), errors.Is(err, resolver.ErrTooManySelectors):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, "analysis failed")
	}
}
