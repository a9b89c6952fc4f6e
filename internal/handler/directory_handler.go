package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/emp-portal-api/internal/dto"
	"github.com/noah-isme/emp-portal-api/pkg/response"
)

// directorySessions adds the directory screen's bulk mutation to the shared
// session surface.
type directorySessions interface {
	viewSessions
	SoftDelete(ctx context.Context, sessionID string) (*dto.MutationResponse, error)
}

// DirectoryHandler exposes the employee-search screen.
type DirectoryHandler struct {
	*ViewHandler
	directory directorySessions
}

// NewDirectoryHandler constructs DirectoryHandler.
func NewDirectoryHandler(directory directorySessions) *DirectoryHandler {
	return &DirectoryHandler{ViewHandler: NewViewHandler(directory), directory: directory}
}

// Register mounts the directory routes.
func (h *DirectoryHandler) Register(rg *gin.RouterGroup) {
	h.RegisterSessionRoutes(rg)
	rg.POST("/sessions/:sessionId/recycle", h.SoftDelete)
}

// SoftDelete godoc
// @Summary Move the selected employees to the recycle bin
// @Tags Directory
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /directory/sessions/{sessionId}/recycle [post]
func (h *DirectoryHandler) SoftDelete(c *gin.Context) {
	res, err := h.directory.SoftDelete(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}
