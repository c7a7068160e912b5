package memory

import (
	"context"
	"strings"
	"sync"

	"veridex/contexts/identity-verification/verifier-registry/domain/entities"
	"veridex/contexts/identity-verification/verifier-registry/ports"
)

// Store is the in-memory registry adapter used by tests and local wiring.
// Ledger-owned state (requests, votes) is held as seeded projections the
// same way production wiring reads them from the shared database.
type Store struct {
	mu sync.RWMutex

	verifiers map[string]entities.Verifier
	requests  map[string]ports.RequestProjection
	votes     map[string]ports.VoteProjection

	block uint64
}

func NewStore(seed []entities.Verifier) *Store {
	verifiers := make(map[string]entities.Verifier, len(seed))
	for _, verifier := range seed {
		verifiers[verifier.VerifierID] = verifier
	}
	return &Store{
		verifiers: verifiers,
		requests:  make(map[string]ports.RequestProjection),
		votes:     make(map[string]ports.VoteProjection),
		block:     1,
	}
}

func voteKey(subjectID string, verifierID string) string {
	return strings.TrimSpace(subjectID) + "/" + strings.TrimSpace(verifierID)
}

// SetBlock moves the simulated ledger height. Heights are supplied by the
// external sequencer in production and must never decrease.
func (s *Store) SetBlock(height uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height > s.block {
		s.block = height
	}
}

func (s *Store) SetRequestOutcome(projection ports.RequestProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[strings.TrimSpace(projection.SubjectID)] = projection
}

func (s *Store) SetVoteRecord(projection ports.VoteProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes[voteKey(projection.SubjectID, projection.VerifierID)] = projection
}

func (s *Store) Now(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.block, nil
}

func (s *Store) SaveVerifier(_ context.Context, verifier entities.Verifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifiers[strings.TrimSpace(verifier.VerifierID)] = verifier
	return nil
}

func (s *Store) GetVerifier(_ context.Context, verifierID string) (entities.Verifier, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	verifier, ok := s.verifiers[strings.TrimSpace(verifierID)]
	return verifier, ok, nil
}

func (s *Store) GetRequestOutcome(_ context.Context, subjectID string) (ports.RequestProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projection, ok := s.requests[strings.TrimSpace(subjectID)]
	return projection, ok, nil
}

func (s *Store) GetVoteRecord(_ context.Context, subjectID string, verifierID string) (ports.VoteProjection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projection, ok := s.votes[voteKey(subjectID, verifierID)]
	return projection, ok, nil
}

// SettleClaim commits the claimed marker and the verifier update under one
// lock, mirroring the single transaction of the postgres adapter.
func (s *Store) SettleClaim(_ context.Context, subjectID string, verifierID string, _ uint64, verifier *entities.Verifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	projection, ok := s.votes[voteKey(subjectID, verifierID)]
	if !ok {
		return nil
	}
	projection.RewardClaimed = true
	s.votes[voteKey(subjectID, verifierID)] = projection
	if verifier != nil {
		s.verifiers[strings.TrimSpace(verifier.VerifierID)] = *verifier
	}
	return nil
}
