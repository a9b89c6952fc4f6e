package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/emp-portal-api/internal/models"
	"github.com/noah-isme/emp-portal-api/pkg/response"
)

type auditLister interface {
	List(ctx context.Context, filter models.IntentAuditFilter) ([]models.IntentAudit, error)
}

// AuditHandler exposes the bulk-intent audit trail.
type AuditHandler struct {
	audit auditLister
}

// NewAuditHandler constructs AuditHandler.
func NewAuditHandler(audit auditLister) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Register mounts the audit routes.
func (h *AuditHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/audit/intents", h.List)
}

// List godoc
// @Summary List bulk-intent audit entries
// @Tags Audit
// @Produce json
// @Param kind query string false "Filter by intent kind"
// @Param outcome query string false "Filter by outcome"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} response.Envelope
// @Router /audit/intents [get]
func (h *AuditHandler) List(c *gin.Context) {
	filter := models.IntentAuditFilter{
		Kind:    models.IntentKind(c.Query("kind")),
		Outcome: models.IntentState(c.Query("outcome")),
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil {
		filter.Offset = offset
	}

	entries, err := h.audit.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}
