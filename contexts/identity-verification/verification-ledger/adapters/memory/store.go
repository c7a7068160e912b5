package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"veridex/contexts/identity-verification/verification-ledger/domain/entities"
	"veridex/contexts/identity-verification/verification-ledger/ports"

	"github.com/google/uuid"
)

type outboxRecord struct {
	message   ports.OutboxMessage
	published bool
}

// Store is the in-memory ledger adapter used by tests and local wiring.
// Multi-row write-sets (ballot + counters, status + outbox) run under one
// lock, mirroring the transactional postgres adapter.
type Store struct {
	mu sync.RWMutex

	requests map[string]entities.VerificationRequest
	votes    map[string]entities.Vote
	outbox   map[string]outboxRecord

	halted bool
	block  uint64
}

func NewStore(seed []entities.VerificationRequest) *Store {
	requests := make(map[string]entities.VerificationRequest, len(seed))
	for _, request := range seed {
		requests[request.SubjectID] = request
	}
	return &Store{
		requests: requests,
		votes:    make(map[string]entities.Vote),
		outbox:   make(map[string]outboxRecord),
		block:    1,
	}
}

func voteKey(subjectID string, verifierID string) string {
	return strings.TrimSpace(subjectID) + "/" + strings.TrimSpace(verifierID)
}

// SetBlock moves the simulated ledger height; it never goes backwards.
func (s *Store) SetBlock(height uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height > s.block {
		s.block = height
	}
}

func (s *Store) Now(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.block, nil
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func (s *Store) Halted(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.halted, nil
}

func (s *Store) SetHalted(_ context.Context, halted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.halted = halted
	return nil
}

func (s *Store) GetRequest(_ context.Context, subjectID string) (entities.VerificationRequest, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	request, ok := s.requests[strings.TrimSpace(subjectID)]
	return request, ok, nil
}

func (s *Store) SaveRequest(_ context.Context, request entities.VerificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[strings.TrimSpace(request.SubjectID)] = request
	return nil
}

func (s *Store) GetVote(_ context.Context, subjectID string, verifierID string) (entities.Vote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vote, ok := s.votes[voteKey(subjectID, verifierID)]
	return vote, ok, nil
}

func (s *Store) ListVotesBySubject(_ context.Context, subjectID string) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subjectID = strings.TrimSpace(subjectID)
	items := make([]entities.Vote, 0)
	for _, vote := range s.votes {
		if vote.SubjectID == subjectID {
			items = append(items, vote)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].VotedAt == items[j].VotedAt {
			return items[i].VerifierID < items[j].VerifierID
		}
		return items[i].VotedAt < items[j].VotedAt
	})
	return items, nil
}

func (s *Store) RecordVote(_ context.Context, vote entities.Vote, request entities.VerificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[voteKey(vote.SubjectID, vote.VerifierID)] = vote
	s.requests[strings.TrimSpace(request.SubjectID)] = request
	return nil
}

func (s *Store) SaveRequestWithOutbox(_ context.Context, request entities.VerificationRequest, event ports.EventEnvelope) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[strings.TrimSpace(request.SubjectID)] = request
	s.outbox[event.EventID] = outboxRecord{
		message: ports.OutboxMessage{
			OutboxID:  event.EventID,
			EventType: event.EventType,
			Payload:   payload,
			CreatedAt: event.OccurredAt,
		},
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]ports.OutboxMessage, 0)
	for _, record := range s.outbox {
		if record.published {
			continue
		}
		items = append(items, record.message)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].OutboxID < items[j].OutboxID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.outbox[outboxID]
	if !ok {
		return nil
	}
	record.published = true
	s.outbox[outboxID] = record
	return nil
}
