package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// lockedThread pairs a thread with its own mutex.
type lockedThread struct {
	mu     sync.Mutex
	thread *types.CollaborationThread
}

// MemoryThreadStore is the in-memory ThreadStore. Thread ids are
// store-assigned UUIDs, so concurrent creation cannot collide.
type MemoryThreadStore struct {
	mu      sync.RWMutex
	threads map[string]*lockedThread
}

// NewMemoryThreadStore creates an empty in-memory thread store.
func NewMemoryThreadStore() *MemoryThreadStore {
	return &MemoryThreadStore{threads: make(map[string]*lockedThread)}
}

// Insert stores the thread under a fresh id, written back to thread.ID.
func (s *MemoryThreadStore) Insert(_ context.Context, thread *types.CollaborationThread) error {
	thread.ID = fmt.Sprintf("thread_%s", uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[thread.ID] = &lockedThread{thread: thread.Clone()}
	return nil
}

// Update applies fn under the thread's lock.
func (s *MemoryThreadStore) Update(_ context.Context, threadID string, fn func(*types.CollaborationThread) error) error {
	s.mu.RLock()
	lt, ok := s.threads[threadID]
	s.mu.RUnlock()
	if !ok {
		return types.NotFound("invalid or missing thread_id: %s", threadID)
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()
	return fn(lt.thread)
}

// Get returns a deep copy of the thread, or nil when unknown.
func (s *MemoryThreadStore) Get(_ context.Context, threadID string) (*types.CollaborationThread, error) {
	s.mu.RLock()
	lt, ok := s.threads[threadID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	lt.mu.Lock()
	defer lt.mu.Unlock()
	return lt.thread.Clone(), nil
}

// List returns deep copies of all threads.
func (s *MemoryThreadStore) List(_ context.Context) ([]*types.CollaborationThread, error) {
	s.mu.RLock()
	slots := make([]*lockedThread, 0, len(s.threads))
	for _, lt := range s.threads {
		slots = append(slots, lt)
	}
	s.mu.RUnlock()

	out := make([]*types.CollaborationThread, 0, len(slots))
	for _, lt := range slots {
		lt.mu.Lock()
		out = append(out, lt.thread.Clone())
		lt.mu.Unlock()
	}
	return out, nil
}

var _ ThreadStore = (*MemoryThreadStore)(nil)
