package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/directory"
	"github.com/noah-isme/emp-portal-api/internal/dto"
	"github.com/noah-isme/emp-portal-api/internal/models"
)

// directoryStore is the record-store surface the directory view needs.
type directoryStore interface {
	directory.StoreClient
	FetchAll(ctx context.Context) ([]models.Employee, error)
}

// DirectoryService runs the employee-search screen: faceted search over the
// active directory plus bulk move-to-recycle.
type DirectoryService struct {
	*viewService
}

// NewDirectoryService constructs the directory view service.
func NewDirectoryService(store directoryStore, counters *CounterService, audit *IntentAuditService,
	pageSize int, ttl time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *DirectoryService {
	if pageSize <= 0 {
		pageSize = directory.DefaultPageSize
	}
	svc := &DirectoryService{
		viewService: newViewService(directory.ViewDirectory, pageSize, store.FetchAll, store, ttl, metrics, audit, validate, logger),
	}
	svc.onCommit = func(intent *models.BulkIntent) {
		if intent.Kind == models.IntentSoftDelete {
			counters.AdjustRecycle(context.Background(), len(intent.IDs))
		}
	}
	return svc
}

// SoftDelete moves the session's selected employees to the recycle bin.
func (s *DirectoryService) SoftDelete(ctx context.Context, sessionID string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, sessionID, func(ctx context.Context, co *directory.Coordinator, ids []int64) (*models.BulkIntent, error) {
		return co.SoftDelete(ctx, ids)
	})
}
