// Package collab manages freestanding collaboration threads: discussion
// channels independent of any candidate pipeline record.
package collab

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

// defaultAuthor is used when a comment carries no author.
const defaultAuthor = "system"

// Hub manages collaboration threads.
type Hub struct {
	threads store.ThreadStore
	now     func() time.Time
}

// Option configures a Hub.
type Option func(*Hub)

// WithClock overrides the hub's wall clock.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) { h.now = now }
}

// NewHub creates a collaboration hub.
func NewHub(threads store.ThreadStore, opts ...Option) *Hub {
	h := &Hub{threads: threads, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Execute dispatches a collaboration request and converts any failure into
// a structured error response. Unrecognized actions enumerate the two
// recognized ones.
func (h *Hub) Execute(ctx context.Context, req types.CollaborationRequest) (resp types.ActionResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("collab: recovered from panic in %s: %v", req.Action, r)
			resp = types.Failure(types.Internal(fmt.Errorf("%v", r), "unexpected failure in %s", req.Action))
		}
	}()

	if err := req.Validate(); err != nil {
		return types.Failure(types.MissingParameter("missing required parameters (action, participants)"))
	}

	switch req.Action {
	case types.ActionStartThread:
		result, err := h.StartThread(ctx, req.Participants)
		if err != nil {
			return types.Failure(err)
		}
		return types.Success(result)
	case types.ActionAddComment:
		result, err := h.AddComment(ctx, req)
		if err != nil {
			return types.Failure(err)
		}
		return types.Success(result)
	default:
		err := types.UnknownAction("unknown action: %s", req.Action)
		valid := make([]string, 0, len(types.CollaborationActions()))
		for _, a := range types.CollaborationActions() {
			valid = append(valid, string(a))
		}
		return types.FailureWithActions(err, valid)
	}
}

// StartThread creates an active thread with the given participants and no
// messages, returning its store-assigned id.
func (h *Hub) StartThread(ctx context.Context, participants []string) (*types.ThreadResult, error) {
	if len(participants) == 0 {
		return nil, types.MissingParameter("missing required parameters (action, participants)")
	}

	now := h.now()
	thread := &types.CollaborationThread{
		CreatedAt:    now,
		Participants: append([]string(nil), participants...),
		Messages:     []types.Comment{},
		Status:       types.ThreadActive,
	}
	if err := h.threads.Insert(ctx, thread); err != nil {
		return nil, err
	}

	return &types.ThreadResult{
		ThreadID:  thread.ID,
		Message:   fmt.Sprintf("New collaboration thread created with ID: %s", thread.ID),
		Timestamp: now,
	}, nil
}

// AddComment appends a comment to the thread named by the request context.
// Comment ids are sequential within the thread; the author defaults to
// "system".
func (h *Hub) AddComment(ctx context.Context, req types.CollaborationRequest) (*types.CommentResult, error) {
	if req.Message == "" {
		return nil, types.MissingParameter("message is required for add_comment action")
	}
	threadID := req.Context.ThreadID
	if threadID == "" {
		return nil, types.NotFound("invalid or missing thread_id: %s", threadID)
	}

	author := req.Context.Author
	if author == "" {
		author = defaultAuthor
	}
	commentType := req.Context.Type
	if commentType == "" {
		commentType = "comment"
	}

	var result *types.CommentResult
	err := h.threads.Update(ctx, threadID, func(thread *types.CollaborationThread) error {
		comment := types.Comment{
			ID:        fmt.Sprintf("comment_%d", len(thread.Messages)+1),
			Author:    author,
			Message:   req.Message,
			Timestamp: h.now(),
			Metadata: types.CommentMetadata{
				Type:   commentType,
				Status: req.Context.Status,
			},
		}
		thread.Messages = append(thread.Messages, comment)

		result = &types.CommentResult{
			ThreadID:  threadID,
			CommentID: comment.ID,
			Message:   "Comment added to thread",
			Timestamp: comment.Timestamp,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Thread returns a snapshot of the thread, failing with NotFound when it
// does not exist.
func (h *Hub) Thread(ctx context.Context, threadID string) (*types.CollaborationThread, error) {
	thread, err := h.threads.Get(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, types.NotFound("invalid or missing thread_id: %s", threadID)
	}
	return thread, nil
}
