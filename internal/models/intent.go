package models

import (
	"time"

	"github.com/lib/pq"
)

// IntentKind enumerates the supported bulk mutations.
type IntentKind string

const (
	IntentSoftDelete      IntentKind = "SOFT_DELETE"
	IntentRestore         IntentKind = "RESTORE"
	IntentPermanentDelete IntentKind = "PERMANENT_DELETE"
)

// IntentState captures the lifecycle of a bulk intent.
type IntentState string

const (
	IntentCreated   IntentState = "CREATED"
	IntentInFlight  IntentState = "IN_FLIGHT"
	IntentCommitted IntentState = "COMMITTED"
	IntentFailed    IntentState = "FAILED"
)

// BulkIntent is the durable record of one requested bulk mutation. The id list
// is fixed at creation after pruning ids no longer present in the cache.
type BulkIntent struct {
	OpID  string      `json:"opId"`
	Kind  IntentKind  `json:"kind"`
	IDs   []int64     `json:"ids"`
	State IntentState `json:"state"`

	// Populated on a committed restore: the records the store brought back.
	Restored []Employee `json:"restored,omitempty"`
}

// IntentAudit is the persisted trail entry written after an intent reaches a
// terminal state.
type IntentAudit struct {
	ID        string        `db:"id" json:"id"`
	OpID      string        `db:"op_id" json:"opId"`
	Kind      IntentKind    `db:"kind" json:"kind"`
	IDs       pq.Int64Array `db:"employee_ids" json:"employeeIds"`
	Outcome   IntentState   `db:"outcome" json:"outcome"`
	Detail    string        `db:"detail" json:"detail"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

// IntentAuditFilter constrains audit listing queries.
type IntentAuditFilter struct {
	Kind    IntentKind
	Outcome IntentState
	Limit   int
	Offset  int
}

// Counters mirrors the shared, eventually-consistent navigation counters.
type Counters struct {
	RecycleCount  int `json:"recycleCount"`
	RequestsCount int `json:"requestsCount"`
}
