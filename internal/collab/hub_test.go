package collab

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/types"
)

func newTestHub() (*Hub, *store.MemoryThreadStore) {
	threads := store.NewMemoryThreadStore()
	return NewHub(threads), threads
}

func TestStartThread_CreatesActiveEmptyThread(t *testing.T) {
	h, threads := newTestHub()
	ctx := context.Background()

	result, err := h.StartThread(ctx, []string{"a", "b"})
	require.NoError(t, err)
	require.NotEmpty(t, result.ThreadID)

	thread, err := threads.Get(ctx, result.ThreadID)
	require.NoError(t, err)
	require.NotNil(t, thread)
	assert.Equal(t, types.ThreadActive, thread.Status)
	assert.Equal(t, []string{"a", "b"}, thread.Participants)
	assert.Empty(t, thread.Messages)
}

func TestStartThread_EmptyParticipants(t *testing.T) {
	h, _ := newTestHub()

	_, err := h.StartThread(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, types.KindMissingParameter, types.KindOf(err))
}

func TestAddComment_ScenarioStartThenComment(t *testing.T) {
	h, threads := newTestHub()
	ctx := context.Background()

	started, err := h.StartThread(ctx, []string{"a", "b"})
	require.NoError(t, err)

	resp := h.Execute(ctx, types.CollaborationRequest{
		Action:       types.ActionAddComment,
		Participants: []string{"a"},
		Message:      "hello",
		Context:      types.CollaborationContext{ThreadID: started.ThreadID},
	})
	require.Equal(t, types.StatusSuccess, resp.Status)

	thread, err := threads.Get(ctx, started.ThreadID)
	require.NoError(t, err)
	require.Len(t, thread.Messages, 1)
	comment := thread.Messages[0]
	assert.Equal(t, "comment_1", comment.ID)
	assert.Equal(t, "system", comment.Author)
	assert.Equal(t, "hello", comment.Message)
	assert.Equal(t, "comment", comment.Metadata.Type)
}

func TestAddComment_SequentialIDsWithinThread(t *testing.T) {
	h, _ := newTestHub()
	ctx := context.Background()

	started, err := h.StartThread(ctx, []string{"a"})
	require.NoError(t, err)

	for i, want := range []string{"comment_1", "comment_2", "comment_3"} {
		result, err := h.AddComment(ctx, types.CollaborationRequest{
			Action:  types.ActionAddComment,
			Message: "message",
			Context: types.CollaborationContext{ThreadID: started.ThreadID},
		})
		require.NoError(t, err, "comment %d", i+1)
		assert.Equal(t, want, result.CommentID)
	}
}

func TestAddComment_ExplicitAuthorAndMetadata(t *testing.T) {
	h, threads := newTestHub()
	ctx := context.Background()

	started, err := h.StartThread(ctx, []string{"a"})
	require.NoError(t, err)

	_, err = h.AddComment(ctx, types.CollaborationRequest{
		Action:  types.ActionAddComment,
		Message: "flagging this",
		Context: types.CollaborationContext{
			ThreadID: started.ThreadID,
			Author:   "recruiter_1",
			Type:     "escalation",
			Status:   "open",
		},
	})
	require.NoError(t, err)

	thread, err := threads.Get(ctx, started.ThreadID)
	require.NoError(t, err)
	comment := thread.Messages[0]
	assert.Equal(t, "recruiter_1", comment.Author)
	assert.Equal(t, "escalation", comment.Metadata.Type)
	assert.Equal(t, "open", comment.Metadata.Status)
}

func TestAddComment_EmptyMessage(t *testing.T) {
	h, _ := newTestHub()
	ctx := context.Background()

	started, err := h.StartThread(ctx, []string{"a"})
	require.NoError(t, err)

	_, err = h.AddComment(ctx, types.CollaborationRequest{
		Action:  types.ActionAddComment,
		Context: types.CollaborationContext{ThreadID: started.ThreadID},
	})
	require.Error(t, err)
	assert.Equal(t, types.KindMissingParameter, types.KindOf(err))
}

func TestAddComment_UnknownThreadLeavesOthersUntouched(t *testing.T) {
	h, threads := newTestHub()
	ctx := context.Background()

	started, err := h.StartThread(ctx, []string{"a"})
	require.NoError(t, err)

	_, err = h.AddComment(ctx, types.CollaborationRequest{
		Action:  types.ActionAddComment,
		Message: "hello",
		Context: types.CollaborationContext{ThreadID: "thread_missing"},
	})
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))

	// Existing threads are unchanged.
	thread, err := threads.Get(ctx, started.ThreadID)
	require.NoError(t, err)
	assert.Empty(t, thread.Messages)
}

func TestAddComment_MissingThreadID(t *testing.T) {
	h, _ := newTestHub()

	_, err := h.AddComment(context.Background(), types.CollaborationRequest{
		Action:  types.ActionAddComment,
		Message: "hello",
	})
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
}

func TestExecute_EmptyActionIsMissingParameter(t *testing.T) {
	h, _ := newTestHub()

	resp := h.Execute(context.Background(), types.CollaborationRequest{
		Participants: []string{"a"},
	})
	require.Equal(t, types.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.KindMissingParameter, resp.Error.Kind)
}

func TestExecute_MissingParticipantsRejectedForAnyAction(t *testing.T) {
	h, threads := newTestHub()
	ctx := context.Background()

	started, err := h.StartThread(ctx, []string{"a"})
	require.NoError(t, err)

	// Even a well-formed add_comment needs participants.
	resp := h.Execute(ctx, types.CollaborationRequest{
		Action:  types.ActionAddComment,
		Message: "hello",
		Context: types.CollaborationContext{ThreadID: started.ThreadID},
	})
	require.Equal(t, types.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.KindMissingParameter, resp.Error.Kind)

	thread, err := threads.Get(ctx, started.ThreadID)
	require.NoError(t, err)
	assert.Empty(t, thread.Messages)
}

func TestExecute_UnknownActionEnumeratesRecognizedOnes(t *testing.T) {
	h, _ := newTestHub()

	resp := h.Execute(context.Background(), types.CollaborationRequest{
		Action:       "share_update",
		Participants: []string{"a"},
	})
	require.Equal(t, types.StatusError, resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, types.KindUnknownAction, resp.Error.Kind)
	assert.ElementsMatch(t, []string{"start_thread", "add_comment"}, resp.Error.ValidActions)
}

func TestThread_NotFound(t *testing.T) {
	h, _ := newTestHub()

	_, err := h.Thread(context.Background(), "thread_missing")
	require.Error(t, err)
	assert.Equal(t, types.KindNotFound, types.KindOf(err))
}
