package memory

import (
	"context"
	"strings"
	"sync"

	"veridex/contexts/identity-verification/appeal-resolver/domain/entities"
	"veridex/contexts/identity-verification/appeal-resolver/ports"
)

// Store is the in-memory appeal adapter used by tests and local wiring. It
// also holds seeded request records so the resolver can run without the
// ledger module; ResolveAppeal applies appeal and override under one lock.
type Store struct {
	mu sync.RWMutex

	appeals  map[string]entities.Appeal
	requests map[string]ports.RequestRecord

	block uint64
}

func NewStore(seed []entities.Appeal) *Store {
	appeals := make(map[string]entities.Appeal, len(seed))
	for _, appeal := range seed {
		appeals[appeal.SubjectID] = appeal
	}
	return &Store{
		appeals:  appeals,
		requests: make(map[string]ports.RequestRecord),
		block:    1,
	}
}

// SetBlock moves the simulated ledger height; it never goes backwards.
func (s *Store) SetBlock(height uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height > s.block {
		s.block = height
	}
}

// SetRequestRecord seeds the ledger-side view of a request.
func (s *Store) SetRequestRecord(record ports.RequestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[strings.TrimSpace(record.SubjectID)] = record
}

func (s *Store) Now(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.block, nil
}

func (s *Store) GetAppeal(_ context.Context, subjectID string) (entities.Appeal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appeal, ok := s.appeals[strings.TrimSpace(subjectID)]
	return appeal, ok, nil
}

func (s *Store) SaveAppeal(_ context.Context, appeal entities.Appeal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appeals[strings.TrimSpace(appeal.SubjectID)] = appeal
	return nil
}

func (s *Store) ResolveAppeal(_ context.Context, appeal entities.Appeal, override *ports.RequestOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appeals[strings.TrimSpace(appeal.SubjectID)] = appeal
	if override != nil {
		subjectID := strings.TrimSpace(override.SubjectID)
		record := s.requests[subjectID]
		record.SubjectID = subjectID
		record.Status = override.Status
		record.ExpiryBlock = override.ExpiryBlock
		s.requests[subjectID] = record
	}
	return nil
}

func (s *Store) GetRequestRecord(_ context.Context, subjectID string) (ports.RequestRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.requests[strings.TrimSpace(subjectID)]
	return record, ok, nil
}
