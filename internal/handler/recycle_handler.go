package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/emp-portal-api/internal/dto"
	"github.com/noah-isme/emp-portal-api/pkg/response"
)

// recycleSessions adds the recycle-bin mutations to the shared session surface.
type recycleSessions interface {
	viewSessions
	Restore(ctx context.Context, sessionID string) (*dto.MutationResponse, error)
	PermanentDelete(ctx context.Context, sessionID string) (*dto.MutationResponse, error)
}

// RecycleHandler exposes the recycle-bin screen.
type RecycleHandler struct {
	*ViewHandler
	recycle recycleSessions
}

// NewRecycleHandler constructs RecycleHandler.
func NewRecycleHandler(recycle recycleSessions) *RecycleHandler {
	return &RecycleHandler{ViewHandler: NewViewHandler(recycle), recycle: recycle}
}

// Register mounts the recycle-bin routes.
func (h *RecycleHandler) Register(rg *gin.RouterGroup) {
	h.RegisterSessionRoutes(rg)
	rg.POST("/sessions/:sessionId/restore", h.Restore)
	rg.POST("/sessions/:sessionId/purge", h.PermanentDelete)
}

// Restore godoc
// @Summary Restore the selected employees from the recycle bin
// @Tags Recycle
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /recycle/sessions/{sessionId}/restore [post]
func (h *RecycleHandler) Restore(c *gin.Context) {
	res, err := h.recycle.Restore(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// PermanentDelete godoc
// @Summary Permanently delete the selected employees
// @Tags Recycle
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /recycle/sessions/{sessionId}/purge [post]
func (h *RecycleHandler) PermanentDelete(c *gin.Context) {
	res, err := h.recycle.PermanentDelete(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}
