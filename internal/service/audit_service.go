package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/models"
	"github.com/noah-isme/emp-portal-api/pkg/jobs"
)

type intentAuditStore interface {
	Create(ctx context.Context, audit *models.IntentAudit) error
	List(ctx context.Context, filter models.IntentAuditFilter) ([]models.IntentAudit, error)
}

// IntentAuditService writes the bulk-intent audit trail off the request path.
// Entries are enqueued onto an in-memory worker queue and persisted best
// effort; a dropped entry never fails the mutation that produced it.
type IntentAuditService struct {
	store  intentAuditStore
	queue  *jobs.Queue
	logger *zap.Logger
}

// NewIntentAuditService constructs the audit service. A nil store disables
// persistence entirely; Record becomes a no-op.
func NewIntentAuditService(store intentAuditStore, workers, bufferSize, maxRetries int, logger *zap.Logger) *IntentAuditService {
	if store == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &IntentAuditService{store: store, logger: logger}
	s.queue = jobs.NewQueue("intent-audit", s.persist, jobs.QueueConfig{
		Workers:    workers,
		BufferSize: bufferSize,
		MaxRetries: maxRetries,
		Logger:     logger,
	})
	return s
}

// Start launches the persistence workers.
func (s *IntentAuditService) Start(ctx context.Context) {
	if s == nil {
		return
	}
	s.queue.Start(ctx)
}

// Stop drains the workers.
func (s *IntentAuditService) Stop() {
	if s == nil {
		return
	}
	s.queue.Stop()
}

// Record enqueues an audit entry for an intent that reached a terminal state.
// Safe on a nil receiver so callers need no disabled-audit branching.
func (s *IntentAuditService) Record(intent *models.BulkIntent, detail string) {
	if s == nil || intent == nil {
		return
	}
	audit := &models.IntentAudit{
		ID:      uuid.NewString(),
		OpID:    intent.OpID,
		Kind:    intent.Kind,
		IDs:     pq.Int64Array(intent.IDs),
		Outcome: intent.State,
		Detail:  detail,
	}
	err := s.queue.Enqueue(jobs.Job{
		ID:      audit.ID,
		Type:    string(intent.Kind),
		Payload: audit,
	})
	if err != nil {
		s.logger.Warn("dropped intent audit entry",
			zap.String("op_id", intent.OpID),
			zap.String("kind", string(intent.Kind)),
			zap.Error(err))
	}
}

// List returns persisted audit entries, latest first.
func (s *IntentAuditService) List(ctx context.Context, filter models.IntentAuditFilter) ([]models.IntentAudit, error) {
	if s == nil {
		return []models.IntentAudit{}, nil
	}
	return s.store.List(ctx, filter)
}

func (s *IntentAuditService) persist(ctx context.Context, job jobs.Job) error {
	audit, ok := job.Payload.(*models.IntentAudit)
	if !ok {
		return fmt.Errorf("unexpected audit payload type %T", job.Payload)
	}
	return s.store.Create(ctx, audit)
}
