package store

import (
	"context"
	"sync"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// lockedRecord pairs a record with its own mutex so that mutations for
// distinct candidates never contend with each other.
type lockedRecord struct {
	mu  sync.Mutex
	rec *types.PipelineRecord
}

// MemoryStore is the in-memory PipelineStore. The outer RWMutex guards the
// map; each record carries a per-candidate mutex that serializes mutations
// and preserves the monotonic-append invariant on stage history.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*lockedRecord
}

// NewMemoryStore creates an empty in-memory pipeline store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*lockedRecord)}
}

// entry returns the locked slot for candidateID, creating the record with
// create() when absent.
func (s *MemoryStore) entry(candidateID string, create func() *types.PipelineRecord) *lockedRecord {
	s.mu.RLock()
	lr, ok := s.records[candidateID]
	s.mu.RUnlock()
	if ok {
		return lr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if lr, ok := s.records[candidateID]; ok {
		return lr
	}
	lr = &lockedRecord{rec: create()}
	s.records[candidateID] = lr
	return lr
}

// Update applies fn under the candidate's lock, lazily creating the record.
// A lazily created record stays in the store even when fn fails afterwards,
// matching the engine's historical bootstrap behavior.
func (s *MemoryStore) Update(_ context.Context, candidateID string, create func() *types.PipelineRecord, fn func(*types.PipelineRecord) error) error {
	lr := s.entry(candidateID, create)
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return fn(lr.rec)
}

// Get returns a deep copy of the record, or nil when the candidate is
// unknown.
func (s *MemoryStore) Get(_ context.Context, candidateID string) (*types.PipelineRecord, error) {
	s.mu.RLock()
	lr, ok := s.records[candidateID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.rec.Clone(), nil
}

// List returns deep copies of all records.
func (s *MemoryStore) List(_ context.Context) ([]*types.PipelineRecord, error) {
	s.mu.RLock()
	slots := make([]*lockedRecord, 0, len(s.records))
	for _, lr := range s.records {
		slots = append(slots, lr)
	}
	s.mu.RUnlock()

	out := make([]*types.PipelineRecord, 0, len(slots))
	for _, lr := range slots {
		lr.mu.Lock()
		out = append(out, lr.rec.Clone())
		lr.mu.Unlock()
	}
	return out, nil
}

var _ PipelineStore = (*MemoryStore)(nil)
