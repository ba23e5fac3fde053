package types

import "time"

// ThreadStatus is the lifecycle status of a collaboration thread.
type ThreadStatus string

// Recognized thread statuses.
const (
	ThreadActive ThreadStatus = "active"
	ThreadClosed ThreadStatus = "closed"
)

// CollaborationThread is a freestanding discussion channel. It is
// independent of any PipelineRecord and only loosely linkable to pipeline
// context via a caller-supplied thread_id reference.
type CollaborationThread struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	Participants []string     `json:"participants"`
	Messages     []Comment    `json:"messages"`
	Status       ThreadStatus `json:"status"`
}

// Comment is a single message inside a collaboration thread. IDs are
// sequential within their thread ("comment_1", "comment_2", ...).
type Comment struct {
	ID        string          `json:"id"`
	Author    string          `json:"author"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  CommentMetadata `json:"metadata"`
}

// CommentMetadata carries the comment type and an optional status tag.
type CommentMetadata struct {
	Type   string `json:"type"`
	Status string `json:"status,omitempty"`
}

// Clone returns a deep copy of the thread.
func (t *CollaborationThread) Clone() *CollaborationThread {
	if t == nil {
		return nil
	}
	out := *t
	out.Participants = append([]string(nil), t.Participants...)
	out.Messages = append([]Comment(nil), t.Messages...)
	return &out
}
