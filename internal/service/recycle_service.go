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

// recycleStore is the record-store surface the recycle-bin view needs.
type recycleStore interface {
	directory.StoreClient
	FetchRecycled(ctx context.Context) ([]models.Employee, error)
}

// RecycleService runs the recycle-bin screen: soft-deleted employees with
// time-window filtering, restore, and permanent delete. Restored records are
// never pushed into directory sessions; those caches refresh on their next
// fetch.
type RecycleService struct {
	*viewService
}

// NewRecycleService constructs the recycle-bin view service.
func NewRecycleService(store recycleStore, counters *CounterService, audit *IntentAuditService,
	pageSize int, ttl time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *RecycleService {
	if pageSize <= 0 {
		pageSize = directory.DefaultPageSize
	}
	svc := &RecycleService{
		viewService: newViewService(directory.ViewRecycle, pageSize, store.FetchRecycled, store, ttl, metrics, audit, validate, logger),
	}
	svc.onCommit = func(intent *models.BulkIntent) {
		if intent.Kind == models.IntentRestore {
			counters.AdjustRecycle(context.Background(), -len(intent.IDs))
		}
	}
	return svc
}

// Restore brings the session's selected employees back from the recycle bin.
func (s *RecycleService) Restore(ctx context.Context, sessionID string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, sessionID, func(ctx context.Context, co *directory.Coordinator, ids []int64) (*models.BulkIntent, error) {
		return co.Restore(ctx, ids)
	})
}

// PermanentDelete destroys the session's selected employees. A failure here
// is surfaced under its own error code since there is no rollback once the
// store acknowledges.
func (s *RecycleService) PermanentDelete(ctx context.Context, sessionID string) (*dto.MutationResponse, error) {
	return s.mutate(ctx, sessionID, func(ctx context.Context, co *directory.Coordinator, ids []int64) (*models.BulkIntent, error) {
		return co.PermanentDelete(ctx, ids)
	})
}
