package commands

import (
	"context"
	"encoding/json"
	"time"

	"veridex/contexts/identity-verification/verification-ledger/ports"
)

const (
	eventTypeFinalized = "verification.finalized"
	eventTypeEscalated = "verification.escalated"
)

type eventPayload struct {
	eventType string
	fields    map[string]any
}

// Outcome events are partitioned by subject for stable ordering on
// subject-scoped consumers.
func (uc LedgerUseCase) newEnvelope(ctx context.Context, event eventPayload, subjectID string, block uint64) (ports.EventEnvelope, error) {
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	payload, err := json.Marshal(event.fields)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          eventID,
		EventType:        event.eventType,
		OccurredAt:       time.Now().UTC(),
		OccurredAtBlock:  block,
		SourceService:    "verification-ledger",
		TraceID:          eventID,
		SchemaVersion:    1,
		PartitionKeyPath: "subject_id",
		PartitionKey:     subjectID,
		Data:             payload,
	}, nil
}
