package dispatchnode

import (
	"fmt"
	"strings"
	"time"

	contractx "deskrouter/agent/contract"
	"deskrouter/conversation"
)

type GraphInput struct {
	ConversationID string
	Text           string
}

type GraphOutput struct {
	ConversationID string
	Content        string
	Match          contractx.MatchResult
}

// GraphState is threaded through the dispatch graph. Stage tracks how far
// the turn got, so failures report exactly what was persisted before them.
type GraphState struct {
	ConversationID string
	Text           string
	Now            time.Time
	Stage          Stage

	Conversation *conversation.Conversation
	Match        contractx.MatchResult
	Reply        string
}

// ValidateRequest rejects blank input before anything is persisted.
func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	conversationID := strings.TrimSpace(in.ConversationID)
	if conversationID == "" {
		return nil, fmt.Errorf("%w: conversation id is empty", contractx.ErrInvalidInput)
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: conversation=%s: message is empty", contractx.ErrInvalidInput, conversationID)
	}

	return &GraphState{
		ConversationID: conversationID,
		Text:           text,
		Now:            nowFn().UTC(),
		Stage:          StageReceived,
	}, nil
}
