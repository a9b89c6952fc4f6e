package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/emp-portal-api/internal/models"
)

// IntentAuditRepository persists the bulk-intent audit trail.
type IntentAuditRepository struct {
	db *sqlx.DB
}

// NewIntentAuditRepository constructs the repository.
func NewIntentAuditRepository(db *sqlx.DB) *IntentAuditRepository {
	return &IntentAuditRepository{db: db}
}

// Create inserts an audit row for a terminal intent state.
func (r *IntentAuditRepository) Create(ctx context.Context, audit *models.IntentAudit) error {
	if audit.ID == "" {
		audit.ID = uuid.NewString()
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO bulk_intent_audit
	(id, op_id, kind, employee_ids, outcome, detail, created_at)
	VALUES (:id, :op_id, :kind, :employee_ids, :outcome, :detail, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, audit); err != nil {
		return fmt.Errorf("create intent audit: %w", err)
	}
	return nil
}

// List returns audit entries matching the filter, latest first.
func (r *IntentAuditRepository) List(ctx context.Context, filter models.IntentAuditFilter) ([]models.IntentAudit, error) {
	builder := strings.Builder{}
	args := make([]interface{}, 0, 2)
	builder.WriteString(`SELECT id, op_id, kind, employee_ids, outcome, detail, created_at FROM bulk_intent_audit`)

	conditions := make([]string, 0, 2)
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Outcome != "" {
		args = append(args, filter.Outcome)
		conditions = append(conditions, fmt.Sprintf("outcome = $%d", len(args)))
	}
	if len(conditions) > 0 {
		builder.WriteString(" WHERE ")
		builder.WriteString(strings.Join(conditions, " AND "))
	}
	builder.WriteString(" ORDER BY created_at DESC")

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	builder.WriteString(fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset))

	var audits []models.IntentAudit
	if err := r.db.SelectContext(ctx, &audits, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list intent audits: %w", err)
	}
	return audits, nil
}
