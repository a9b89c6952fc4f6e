package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/emp-portal-api/internal/dto"
	"github.com/noah-isme/emp-portal-api/internal/models"
	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
	"github.com/noah-isme/emp-portal-api/pkg/response"
)

// viewSessions is the session surface shared by the directory, recycle, and
// intercom screens.
type viewSessions interface {
	Open(ctx context.Context) (*dto.SessionResponse, error)
	Refresh(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	Close(sessionID string) error
	Facets(sessionID string) (models.FacetMap, error)
	SetFilter(sessionID string, req dto.FilterRequest) (*dto.PageResponse, error)
	Page(sessionID string) (*dto.PageResponse, error)
	LoadMore(sessionID string) (*dto.PageResponse, error)
	Toggle(sessionID string, req dto.ToggleRequest) (*dto.SelectionResponse, error)
	ToggleAll(sessionID string) (*dto.SelectionResponse, error)
	SelectNext(sessionID string, req dto.SelectNextRequest) (*dto.SelectionResponse, error)
	ClearSelection(sessionID string) (*dto.SelectionResponse, error)
}

// ViewHandler exposes the per-screen session endpoints.
type ViewHandler struct {
	sessions viewSessions
}

// NewViewHandler constructs ViewHandler.
func NewViewHandler(sessions viewSessions) *ViewHandler {
	return &ViewHandler{sessions: sessions}
}

// RegisterSessionRoutes mounts the shared session endpoints under the group.
func (h *ViewHandler) RegisterSessionRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.Open)
	rg.POST("/sessions/:sessionId/refresh", h.Refresh)
	rg.DELETE("/sessions/:sessionId", h.Close)
	rg.GET("/sessions/:sessionId/facets", h.Facets)
	rg.PUT("/sessions/:sessionId/filter", h.SetFilter)
	rg.GET("/sessions/:sessionId/page", h.Page)
	rg.POST("/sessions/:sessionId/page/more", h.LoadMore)
	rg.POST("/sessions/:sessionId/selection/toggle", h.Toggle)
	rg.POST("/sessions/:sessionId/selection/toggle-all", h.ToggleAll)
	rg.POST("/sessions/:sessionId/selection/next", h.SelectNext)
	rg.DELETE("/sessions/:sessionId/selection", h.ClearSelection)
}

// Open godoc
// @Summary Open a view session
// @Tags Sessions
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /sessions [post]
func (h *ViewHandler) Open(c *gin.Context) {
	session, err := h.sessions.Open(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Refresh godoc
// @Summary Re-fetch the session's records
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/refresh [post]
func (h *ViewHandler) Refresh(c *gin.Context) {
	session, err := h.sessions.Refresh(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Close godoc
// @Summary Close a view session
// @Tags Sessions
// @Param sessionId path string true "Session ID"
// @Success 204
// @Router /sessions/{sessionId} [delete]
func (h *ViewHandler) Close(c *gin.Context) {
	if err := h.sessions.Close(c.Param("sessionId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Facets godoc
// @Summary Facet values derived from the session's cache
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/facets [get]
func (h *ViewHandler) Facets(c *gin.Context) {
	facets, err := h.sessions.Facets(c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, facets, nil)
}

// SetFilter godoc
// @Summary Replace the session's filter state
// @Tags Sessions
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param payload body dto.FilterRequest true "Filter state"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/filter [put]
func (h *ViewHandler) SetFilter(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	page, err := h.sessions.SetFilter(c.Param("sessionId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, nil)
}

// Page godoc
// @Summary Currently visible page
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/page [get]
func (h *ViewHandler) Page(c *gin.Context) {
	page, err := h.sessions.Page(c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, nil)
}

// LoadMore godoc
// @Summary Grow the pagination window by one page
// @Tags Sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/page/more [post]
func (h *ViewHandler) LoadMore(c *gin.Context) {
	page, err := h.sessions.LoadMore(c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, nil)
}

// Toggle godoc
// @Summary Toggle selection for one employee
// @Tags Selection
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param payload body dto.ToggleRequest true "Employee id"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/selection/toggle [post]
func (h *ViewHandler) Toggle(c *gin.Context) {
	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	sel, err := h.sessions.Toggle(c.Param("sessionId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sel, nil)
}

// ToggleAll godoc
// @Summary Toggle every employee in the filtered view
// @Tags Selection
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/selection/toggle-all [post]
func (h *ViewHandler) ToggleAll(c *gin.Context) {
	sel, err := h.sessions.ToggleAll(c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sel, nil)
}

// SelectNext godoc
// @Summary Select the next batch of unselected employees
// @Tags Selection
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param payload body dto.SelectNextRequest true "Batch size"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/selection/next [post]
func (h *ViewHandler) SelectNext(c *gin.Context) {
	var req dto.SelectNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	sel, err := h.sessions.SelectNext(c.Param("sessionId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sel, nil)
}

// ClearSelection godoc
// @Summary Leave select mode, discarding the selection
// @Tags Selection
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /sessions/{sessionId}/selection [delete]
func (h *ViewHandler) ClearSelection(c *gin.Context) {
	sel, err := h.sessions.ClearSelection(c.Param("sessionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sel, nil)
}
