package dispatchnode

import (
	"context"
	"fmt"

	contractx "deskrouter/agent/contract"
	"deskrouter/conversation"
)

// AppendUserMessage persists the inbound turn.
func AppendUserMessage(ctx context.Context, in *GraphState, store conversation.Store) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrInvalidInput)
	}

	if _, err := store.AppendMessage(ctx, in.ConversationID, conversation.RoleUser, in.Text); err != nil {
		return nil, storeFailure(err, in.ConversationID, in.Stage)
	}
	return in, nil
}

// AppendAgentMessage persists the handler's reply. It runs only after the
// handler completed, so a failed handler leaves the user turn without an
// agent turn.
func AppendAgentMessage(ctx context.Context, in *GraphState, store conversation.Store) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrInvalidInput)
	}

	if _, err := store.AppendMessage(ctx, in.ConversationID, conversation.RoleAgent, in.Reply); err != nil {
		return nil, storeFailure(err, in.ConversationID, in.Stage)
	}
	in.Stage = StagePersisted
	return in, nil
}
