package ports

import (
	"context"
	"encoding/json"
	"time"

	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
)

// RequestRepository owns the request and vote tables. RecordVote and
// SaveRequestWithOutbox carry multi-row write-sets that must commit
// atomically; the memory adapter runs them under one lock and the postgres
// adapter in one transaction.
type RequestRepository interface {
	GetRequest(ctx context.Context, subjectID string) (entities.VerificationRequest, bool, error)
	SaveRequest(ctx context.Context, request entities.VerificationRequest) error
	GetVote(ctx context.Context, subjectID string, verifierID string) (entities.Vote, bool, error)
	ListVotesBySubject(ctx context.Context, subjectID string) ([]entities.Vote, error)
	RecordVote(ctx context.Context, vote entities.Vote, request entities.VerificationRequest) error
	SaveRequestWithOutbox(ctx context.Context, request entities.VerificationRequest, event EventEnvelope) error
}

// ControlRepository persists the single emergency-halt flag. The flag gates
// submission and voting only; it is consulted, never computed, by commands.
type ControlRepository interface {
	Halted(ctx context.Context) (bool, error)
	SetHalted(ctx context.Context, halted bool) error
}

// VerifierDirectory is the registry-owned authorization predicate.
type VerifierDirectory interface {
	IsAuthorized(ctx context.Context, verifierID string) (bool, error)
}

// Sequencer supplies the externally ordered, monotonically non-decreasing
// ledger height used as "now" by every operation.
type Sequencer interface {
	Now(ctx context.Context) (uint64, error)
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// EventEnvelope is the canonical event shape consumed by off-ledger
// indexers and dashboards.
type EventEnvelope struct {
	EventID          string          `json:"event_id"`
	EventType        string          `json:"event_type"`
	OccurredAt       time.Time       `json:"occurred_at"`
	OccurredAtBlock  uint64          `json:"occurred_at_block"`
	SourceService    string          `json:"source_service"`
	TraceID          string          `json:"trace_id"`
	SchemaVersion    int             `json:"schema_version"`
	PartitionKeyPath string          `json:"partition_key_path"`
	PartitionKey     string          `json:"partition_key"`
	Data             json.RawMessage `json:"data"`
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// EventPublisher publishes envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
