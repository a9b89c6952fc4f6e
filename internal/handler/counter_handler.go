package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/emp-portal-api/internal/models"
	"github.com/noah-isme/emp-portal-api/pkg/response"
)

type counterProvider interface {
	Counters(ctx context.Context) (*models.Counters, error)
}

// CounterHandler serves the shared navigation counters.
type CounterHandler struct {
	counters counterProvider
}

// NewCounterHandler constructs CounterHandler.
func NewCounterHandler(counters counterProvider) *CounterHandler {
	return &CounterHandler{counters: counters}
}

// Register mounts the counter route.
func (h *CounterHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/counters", h.Get)
}

// Get godoc
// @Summary Recycle-bin and pending-request counters
// @Tags Counters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /counters [get]
func (h *CounterHandler) Get(c *gin.Context) {
	counters, err := h.counters.Counters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, counters, nil)
}
