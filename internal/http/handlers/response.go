// Package handlers provides the HTTP handler implementations for the public
// API.
//
// This file defines the response utilities shared by all endpoints. Every
// failure crosses this boundary as an *apierr.Error, so the serialized
// envelope and status code are decided in exactly one place: 5xx causes are
// logged with request context and replaced by fixed generic messages,
// validation failures carry their ordered detail list, and all bodies echo
// the request correlation ID.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahyz0569/go-tutor-backend/internal/apierr"
	"github.com/ahyz0569/go-tutor-backend/internal/http/middleware"
)

// respondError writes the wire representation of e and aborts the request.
//
// Server errors (>= 500) are logged with the request-scoped logger,
// including the opaque internal cause that never reaches the client.
func respondError(c *gin.Context, e *apierr.Error) {
	status := e.Status()
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", e.Code()).
			Str("cause", e.Internal()).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, e.Body(middleware.RequestIDFrom(c)))
}

// RespondError is the exported variant of respondError, used by router
// fallbacks (NoRoute/NoMethod) to keep envelopes consistent.
func RespondError(c *gin.Context, e *apierr.Error) { respondError(c, e) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
