package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/directory"
	"github.com/noah-isme/emp-portal-api/internal/models"
)

// intercomStore is the record-store surface the intercom view needs.
type intercomStore interface {
	directory.StoreClient
	FetchAll(ctx context.Context) ([]models.Employee, error)
}

// IntercomService runs the intercom-directory screen: the same faceted
// search and selection engine over the card grid (floors, extensions), with
// no bulk mutations.
type IntercomService struct {
	*viewService
}

// NewIntercomService constructs the intercom view service.
func NewIntercomService(store intercomStore, audit *IntentAuditService,
	pageSize int, ttl time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *IntercomService {
	if pageSize <= 0 {
		pageSize = directory.IntercomPageSize
	}
	return &IntercomService{
		viewService: newViewService(directory.ViewIntercom, pageSize, store.FetchAll, store, ttl, metrics, audit, validate, logger),
	}
}
