package dispatchnode

import (
	"context"
	"fmt"

	contractx "deskrouter/agent/contract"
	"deskrouter/conversation"
)

// EnsureConversation looks the conversation up, creating it with the
// default user if this is the first message referencing the id.
func EnsureConversation(
	ctx context.Context,
	in *GraphState,
	store conversation.Store,
	defaultUserID string,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrInvalidInput)
	}

	conv, err := store.GetOrCreate(ctx, in.ConversationID, defaultUserID)
	if err != nil {
		return nil, storeFailure(err, in.ConversationID, in.Stage)
	}
	in.Conversation = conv
	return in, nil
}
