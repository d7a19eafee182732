// Health-check handler: reports liveness plus a running visit counter.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @ID          health
// @Summary     Health check
// @Description Returns the configured greeting with the number of prior health checks.
// @Tags        Health
// @Produce     json
//
// @Success     200  {string}  string  "I'm good. You've already asked me 2 times"
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	h.mu.Lock()
	visits := h.visits
	h.visits++
	h.mu.Unlock()

	ok(c, http.StatusOK, fmt.Sprintf("%s %d times", h.greeting, visits))
}
