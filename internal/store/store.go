// Package store provides keyed storage for pipeline records and
// collaboration threads. Implementations serialize mutations per key so
// that the append-only history invariants hold under concurrent callers.
package store

import (
	"context"

	"github.com/jonathan/hiring-coordinator/internal/types"
)

// PipelineStore is the contract the workflow core requires from
// persistence: get-or-default by candidate id and whole-record replacement.
// No field-level patch operations exist.
type PipelineStore interface {
	// Update applies fn to the candidate's record under the store's
	// per-candidate lock. When the record is absent it is first created
	// with create(). fn mutates the record in place; a non-nil error from
	// fn is returned to the caller.
	Update(ctx context.Context, candidateID string, create func() *types.PipelineRecord, fn func(*types.PipelineRecord) error) error

	// Get returns a snapshot of the candidate's record, or nil when the
	// candidate is unknown.
	Get(ctx context.Context, candidateID string) (*types.PipelineRecord, error)

	// List returns a snapshot of all records. The snapshot is
	// non-transactional and may be stale relative to in-flight mutations.
	List(ctx context.Context) ([]*types.PipelineRecord, error)
}

// ThreadStore is the keyed store for collaboration threads.
type ThreadStore interface {
	// Insert stores a new thread under a store-assigned unique id,
	// written back to thread.ID.
	Insert(ctx context.Context, thread *types.CollaborationThread) error

	// Update applies fn to the thread under the store's per-thread lock.
	// Returns a not_found error when the thread is unknown.
	Update(ctx context.Context, threadID string, fn func(*types.CollaborationThread) error) error

	// Get returns a snapshot of the thread, or nil when unknown.
	Get(ctx context.Context, threadID string) (*types.CollaborationThread, error)

	// List returns a snapshot of all threads.
	List(ctx context.Context) ([]*types.CollaborationThread, error)
}
