package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/emp-portal-api/internal/directory"
	"github.com/noah-isme/emp-portal-api/internal/dto"
	"github.com/noah-isme/emp-portal-api/internal/models"
	appErrors "github.com/noah-isme/emp-portal-api/pkg/errors"
)

// recordFetcher populates a view's record cache from the record store.
type recordFetcher func(ctx context.Context) ([]models.Employee, error)

type viewSession struct {
	id          string
	view        *directory.View
	coordinator *directory.Coordinator
	lastSeen    time.Time
}

// sessionRegistry owns the live view sessions of one service. Each session's
// cache, filter, and selection belong to that session alone; the registry only
// adds TTL bookkeeping.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*viewSession
	ttl      time.Duration
}

func newSessionRegistry(ttl time.Duration) *sessionRegistry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &sessionRegistry{sessions: make(map[string]*viewSession), ttl: ttl}
}

func (r *sessionRegistry) put(s *viewSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.lastSeen = time.Now()
	r.sessions[s.id] = s
}

func (r *sessionRegistry) get(id string) (*viewSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

func (r *sessionRegistry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

func (r *sessionRegistry) sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	expired := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			expired++
		}
	}
	return expired
}

// viewService carries the machinery shared by the directory, recycle, and
// intercom screens: session lifecycle, filtering, pagination, and selection.
// The concrete services layer their bulk mutations on top.
type viewService struct {
	kind     directory.ViewKind
	pageSize int
	fetch    recordFetcher
	store    directory.StoreClient
	sessions *sessionRegistry
	metrics  *MetricsService
	audit    *IntentAuditService
	validate *validator.Validate
	logger   *zap.Logger
	onCommit directory.CommitHook
}

func newViewService(kind directory.ViewKind, pageSize int, fetch recordFetcher, store directory.StoreClient,
	ttl time.Duration, metrics *MetricsService, audit *IntentAuditService, validate *validator.Validate, logger *zap.Logger) *viewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &viewService{
		kind:     kind,
		pageSize: pageSize,
		fetch:    fetch,
		store:    store,
		sessions: newSessionRegistry(ttl),
		metrics:  metrics,
		audit:    audit,
		validate: validate,
		logger:   logger,
	}
}

// Open fetches the view's records and creates a session. A failed fetch
// leaves no partial cache behind.
func (s *viewService) Open(ctx context.Context) (*dto.SessionResponse, error) {
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status,
			"failed to fetch records from the record store")
	}

	view := directory.NewView(s.kind, s.pageSize)
	view.Populate(records)

	session := &viewSession{
		id:          uuid.NewString(),
		view:        view,
		coordinator: directory.NewCoordinator(view, s.store, s.logger),
	}
	if s.onCommit != nil {
		session.coordinator.OnCommit(s.onCommit)
	}
	s.sessions.put(session)
	s.metrics.RecordSessionOpened(string(s.kind))
	s.logger.Info("view session opened",
		zap.String("view", string(s.kind)),
		zap.String("session_id", session.id),
		zap.Int("records", view.Len()))

	return &dto.SessionResponse{
		SessionID: session.id,
		View:      string(s.kind),
		CacheSize: view.Len(),
		Facets:    view.Facets(),
		Page:      s.page(session),
	}, nil
}

// Refresh re-fetches the view's records into the existing session, dropping
// selection and pagination state with the stale cache.
func (s *viewService) Refresh(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	records, err := s.fetch(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status,
			"failed to fetch records from the record store")
	}
	session.view.Populate(records)
	return &dto.SessionResponse{
		SessionID: session.id,
		View:      string(s.kind),
		CacheSize: session.view.Len(),
		Facets:    session.view.Facets(),
		Page:      s.page(session),
	}, nil
}

// Close drops the session and its cache.
func (s *viewService) Close(sessionID string) error {
	if !s.sessions.remove(sessionID) {
		return appErrors.ErrSessionNotFound
	}
	return nil
}

// Facets returns the facet map derived from the session's cache.
func (s *viewService) Facets(sessionID string) (models.FacetMap, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return models.FacetMap{}, appErrors.ErrSessionNotFound
	}
	return session.view.Facets(), nil
}

// SetFilter replaces the filter state and returns the first page of the new
// filtered list. The pagination window resets on every call.
func (s *viewService) SetFilter(sessionID string, req dto.FilterRequest) (*dto.PageResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid filter payload")
	}
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	session.view.SetFilter(req.FilterState())
	page := s.page(session)
	return &page, nil
}

// Page returns the currently visible slice.
func (s *viewService) Page(sessionID string) (*dto.PageResponse, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	page := s.page(session)
	return &page, nil
}

// LoadMore grows the pagination window by one page.
func (s *viewService) LoadMore(sessionID string) (*dto.PageResponse, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	session.view.LoadMore()
	page := s.page(session)
	return &page, nil
}

// Toggle flips selection for one employee.
func (s *viewService) Toggle(sessionID string, req dto.ToggleRequest) (*dto.SelectionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid toggle payload")
	}
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	session.view.Toggle(req.ID)
	return s.selection(session), nil
}

// ToggleAll toggles every employee in the filtered view.
func (s *viewService) ToggleAll(sessionID string) (*dto.SelectionResponse, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	session.view.ToggleAll()
	return s.selection(session), nil
}

// SelectNext selects the next batch of unselected employees in view order.
func (s *viewService) SelectNext(sessionID string, req dto.SelectNextRequest) (*dto.SelectionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid select-next payload")
	}
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	session.view.SelectNextBatch(req.Count)
	return s.selection(session), nil
}

// ClearSelection leaves select mode: the selection set is discarded.
func (s *viewService) ClearSelection(sessionID string) (*dto.SelectionResponse, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	session.view.ClearSelection()
	return s.selection(session), nil
}

// StartSweeper expires idle sessions until ctx is done.
func (s *viewService) StartSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if expired := s.sessions.sweep(now); expired > 0 {
					s.metrics.RecordSessionsExpired(expired)
					s.logger.Debug("view sessions expired",
						zap.String("view", string(s.kind)),
						zap.Int("count", expired))
				}
			}
		}
	}()
}

func (s *viewService) page(session *viewSession) dto.PageResponse {
	employees, total, visible := session.view.Page()
	selected, _ := session.view.SelectionCount()
	return dto.PageResponse{
		Employees:     employees,
		FilteredTotal: total,
		VisibleCount:  visible,
		SelectedCount: selected,
		CacheSize:     session.view.Len(),
	}
}

func (s *viewService) selection(session *viewSession) *dto.SelectionResponse {
	selected, total := session.view.SelectionCount()
	return &dto.SelectionResponse{SelectedCount: selected, FilteredTotal: total}
}

// mutate runs one bulk intent over the session's current selection.
func (s *viewService) mutate(ctx context.Context, sessionID string,
	run func(context.Context, *directory.Coordinator, []int64) (*models.BulkIntent, error)) (*dto.MutationResponse, error) {
	session, ok := s.sessions.get(sessionID)
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	ids := session.view.SelectedIDs()
	if len(ids) == 0 {
		return nil, appErrors.ErrEmptySelection
	}
	intent, err := run(ctx, session.coordinator, ids)
	if intent != nil {
		s.metrics.RecordIntentOutcome(string(intent.Kind), string(intent.State))
		detail := ""
		if err != nil {
			detail = err.Error()
		}
		s.audit.Record(intent, detail)
	}
	if err != nil {
		return nil, err
	}
	return &dto.MutationResponse{
		OpID:     intent.OpID,
		Kind:     string(intent.Kind),
		Count:    len(intent.IDs),
		Restored: intent.Restored,
	}, nil
}
