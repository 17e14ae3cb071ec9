package dispatchnode

import (
	"context"
	"fmt"
	"strings"
	"time"

	contractx "deskrouter/agent/contract"
)

// InvokeHandler runs the matched agent handler under a bounded timeout.
// Handler errors and timeouts both surface as handler failures and are
// never masked by a canned reply, so a broken agent stays visible.
func InvokeHandler(
	ctx context.Context,
	in *GraphState,
	registry contractx.Registry,
	timeout time.Duration,
) (*GraphState, error) {
	if in == nil || in.Conversation == nil {
		return nil, fmt.Errorf("%w: graph conversation is nil", contractx.ErrInvalidInput)
	}

	handler, ok := registry.HandlerFor(in.Match.Agent)
	if !ok {
		return nil, fmt.Errorf("%w: conversation=%s stage=%s: no handler for agent=%s",
			contractx.ErrHandlerFailed, in.ConversationID, in.Stage, in.Match.Agent)
	}

	hctx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := handler.Handle(hctx, contractx.HandlerRequest{
		ConversationID: in.ConversationID,
		UserID:         in.Conversation.UserID,
		Message:        in.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: conversation=%s stage=%s agent=%s: %v",
			contractx.ErrHandlerFailed, in.ConversationID, in.Stage, in.Match.Agent, err)
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		return nil, fmt.Errorf("%w: conversation=%s stage=%s agent=%s: empty reply",
			contractx.ErrHandlerFailed, in.ConversationID, in.Stage, in.Match.Agent)
	}

	in.Reply = reply
	in.Stage = StageHandled
	return in, nil
}
