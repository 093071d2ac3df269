package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/projectdesk/internal/server/http/dto"
)

const serviceName = "projectdesk"

// HealthHandler reports liveness for load balancers.
type HealthHandler struct {
	facade HealthFacade
	now    func() time.Time
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade, now: time.Now}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Timestamp: h.now().UTC(), Service: serviceName}
	if err := h.facade.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		resp.Status = "unavailable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
