package workers

import (
	"context"
	"errors"
	"testing"

	"veridex/contexts/identity-verification/verification-ledger/adapters/memory"
	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	"veridex/contexts/identity-verification/verification-ledger/ports"
)

type publisherStub struct {
	published []ports.EventEnvelope
	fail      bool
}

func (p *publisherStub) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func seedOutbox(t *testing.T, store *memory.Store, eventID string) {
	t.Helper()
	err := store.SaveRequestWithOutbox(context.Background(), entities.VerificationRequest{
		SubjectID: "sub_" + eventID,
		Status:    entities.StatusVerified,
	}, ports.EventEnvelope{
		EventID:   eventID,
		EventType: "verification.finalized",
	})
	if err != nil {
		t.Fatalf("seed outbox %s: %v", eventID, err)
	}
}

func TestRunOncePublishesAndAcksPendingRows(t *testing.T) {
	store := memory.NewStore(nil)
	seedOutbox(t, store, "evt_1")
	seedOutbox(t, store, "evt_2")
	publisher := &publisherStub{}

	relay := OutboxRelay{Outbox: store, Publisher: publisher, BatchSize: 10}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run: %v", err)
	}
	if len(publisher.published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(publisher.published))
	}
	pending, _ := store.ListPendingOutbox(context.Background(), 10)
	if len(pending) != 0 {
		t.Fatalf("published rows must leave the pending set, got %d", len(pending))
	}
}

func TestRunOnceKeepsRowsPendingOnPublishFailure(t *testing.T) {
	store := memory.NewStore(nil)
	seedOutbox(t, store, "evt_1")
	publisher := &publisherStub{fail: true}

	relay := OutboxRelay{Outbox: store, Publisher: publisher}
	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatalf("expected publish failure to surface")
	}
	pending, _ := store.ListPendingOutbox(context.Background(), 10)
	if len(pending) != 1 {
		t.Fatalf("failed publish must keep the row pending, got %d", len(pending))
	}
}

func TestRunOnceNoopOnEmptyOutbox(t *testing.T) {
	store := memory.NewStore(nil)
	relay := OutboxRelay{Outbox: store, Publisher: &publisherStub{}}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("empty outbox must be a noop, got %v", err)
	}
}
