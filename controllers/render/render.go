// Package render writes the JSON error body shared by every handler.
package render

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/armory-api/services"
	"github.com/rs/zerolog/log"
)

// Status maps a services error kind to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error aborts the request with {"error", "entity", "key"}. Persistence and
// unexpected errors hide their cause from the client.
func Error(c *gin.Context, err error) {
	status := Status(err)
	body := gin.H{"error": err.Error()}

	var e *services.Error
	if errors.As(err, &e) {
		body["entity"] = e.Entity
		body["key"] = e.Key
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		body["error"] = "Internal server error"
	}
	c.AbortWithStatusJSON(status, body)
}

// BadRequest reports a malformed body or query.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
