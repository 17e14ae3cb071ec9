package conversation

import "context"

// Store is the persistence contract used by the dispatcher and the
// transport layer. Nothing else writes conversations or messages.
type Store interface {
	// GetOrCreate returns the conversation with the given id, creating it
	// with the default user if absent. Idempotent: concurrent calls with the
	// same id never create duplicates.
	GetOrCreate(ctx context.Context, id string, defaultUserID string) (*Conversation, error)

	// AppendMessage stores one message. Returns ErrNotFound if the
	// conversation does not exist.
	AppendMessage(ctx context.Context, conversationID string, sender Role, content string) (*Message, error)

	// ListMessages returns the conversation's messages in ascending
	// timestamp order. Unknown ids yield an empty slice, not an error.
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)

	ListConversations(ctx context.Context) ([]Conversation, error)

	// Delete removes the conversation and cascades to its messages.
	// Returns ErrNotFound if the conversation does not exist.
	Delete(ctx context.Context, id string) error
}
