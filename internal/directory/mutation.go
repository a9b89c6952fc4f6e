package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/models"
	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
)

// StoreClient is the slice of the record-store API the coordinator needs.
type StoreClient interface {
	MoveToRecycle(ctx context.Context, ids []int64) error
	Restore(ctx context.Context, ids []int64) ([]models.Employee, error)
	PermanentDelete(ctx context.Context, ids []int64) error
}

// CommitHook observes committed intents; used to adjust shared counters and
// record the audit trail.
type CommitHook func(intent *models.BulkIntent)

// Coordinator drives bulk intents against one view's record cache through the
// Created -> InFlight -> Committed|Failed state machine. The optimistic cache
// mutation is applied atomically with the derived-state recompute before the
// network call resolves; on rejection the pre-intent snapshot is reinserted at
// its prior relative positions.
//
// Only one intent runs against a cache at a time: the intent mutex serializes
// overlapping submissions instead of leaving them undefined, and a cache
// generation check keeps any response that lost the race (for example against
// a concurrent repopulate) from corrupting newer state.
type Coordinator struct {
	intentMu sync.Mutex

	view   *View
	store  StoreClient
	logger *zap.Logger

	onCommit CommitHook
}

// NewCoordinator wires a coordinator to its view and record store.
func NewCoordinator(view *View, store StoreClient, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{view: view, store: store, logger: logger}
}

// OnCommit registers a hook invoked after every committed intent.
func (co *Coordinator) OnCommit(hook CommitHook) {
	co.onCommit = hook
}

// SoftDelete moves the given employees to the recycle bin.
func (co *Coordinator) SoftDelete(ctx context.Context, ids []int64) (*models.BulkIntent, error) {
	return co.execute(ctx, models.IntentSoftDelete, ids)
}

// Restore brings recycled employees back. Restored records are not inserted
// into any directory cache here: directory views are independent snapshots
// and must re-fetch.
func (co *Coordinator) Restore(ctx context.Context, ids []int64) (*models.BulkIntent, error) {
	return co.execute(ctx, models.IntentRestore, ids)
}

// PermanentDelete destroys recycled employees. Its failure carries a distinct
// error code: once the store acknowledges, there is no rollback, so callers
// must frame the failure as irrecoverable rather than retryable.
func (co *Coordinator) PermanentDelete(ctx context.Context, ids []int64) (*models.BulkIntent, error) {
	return co.execute(ctx, models.IntentPermanentDelete, ids)
}

func (co *Coordinator) execute(ctx context.Context, kind models.IntentKind, ids []int64) (*models.BulkIntent, error) {
	co.intentMu.Lock()
	defer co.intentMu.Unlock()

	snapshot, kept, generation := co.view.applyRemoval(ids)

	intent := &models.BulkIntent{
		OpID:  uuid.NewString(),
		Kind:  kind,
		IDs:   kept,
		State: models.IntentCreated,
	}

	if len(kept) == 0 {
		// Every id was already gone (recycled by another view); nothing to do.
		intent.State = models.IntentCommitted
		return intent, nil
	}

	intent.State = models.IntentInFlight
	co.logger.Debug("bulk intent in flight",
		zap.String("op_id", intent.OpID),
		zap.String("kind", string(kind)),
		zap.Int("count", len(kept)))

	var restored []models.Employee
	var err error
	switch kind {
	case models.IntentSoftDelete:
		err = co.store.MoveToRecycle(ctx, kept)
	case models.IntentRestore:
		restored, err = co.store.Restore(ctx, kept)
	case models.IntentPermanentDelete:
		err = co.store.PermanentDelete(ctx, kept)
	default:
		err = fmt.Errorf("unknown intent kind %q", kind)
	}

	if err != nil {
		intent.State = models.IntentFailed
		if !co.view.rollbackRemoval(snapshot, generation) {
			co.logger.Warn("stale intent response discarded",
				zap.String("op_id", intent.OpID),
				zap.Uint64("generation", generation))
		}
		return intent, co.failure(kind, len(kept), err)
	}

	intent.State = models.IntentCommitted
	intent.Restored = restored
	co.view.commitRemoval(generation)
	if co.onCommit != nil {
		co.onCommit(intent)
	}
	return intent, nil
}

func (co *Coordinator) failure(kind models.IntentKind, count int, err error) error {
	switch kind {
	case models.IntentSoftDelete:
		return appErrors.Wrap(err, appErrors.ErrMutationRejected.Code, appErrors.ErrMutationRejected.Status,
			fmt.Sprintf("failed to move %d employees to recycle bin", count))
	case models.IntentRestore:
		return appErrors.Wrap(err, appErrors.ErrMutationRejected.Code, appErrors.ErrMutationRejected.Status,
			fmt.Sprintf("failed to restore %d employees", count))
	case models.IntentPermanentDelete:
		return appErrors.Wrap(err, appErrors.ErrPermanentDeleteFailed.Code, appErrors.ErrPermanentDeleteFailed.Status,
			fmt.Sprintf("failed to permanently delete %d employees", count))
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "bulk mutation failed")
	}
}
