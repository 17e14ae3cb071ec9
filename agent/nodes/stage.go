package dispatchnode

import (
	"errors"
	"fmt"

	contractx "deskrouter/agent/contract"
	"deskrouter/conversation"
)

// Stage names the dispatch state machine positions:
// received -> classified -> handled -> persisted -> responded.
type Stage string

const (
	StageReceived   Stage = "received"
	StageClassified Stage = "classified"
	StageHandled    Stage = "handled"
	StagePersisted  Stage = "persisted"
	StageResponded  Stage = "responded"
)

// storeFailure annotates a store error with the conversation and the stage
// reached. conversation.ErrNotFound keeps its kind; everything else becomes
// a store failure.
func storeFailure(err error, conversationID string, stage Stage) error {
	if errors.Is(err, conversation.ErrNotFound) {
		return fmt.Errorf("conversation=%s stage=%s: %w", conversationID, stage, err)
	}
	return fmt.Errorf("%w: conversation=%s stage=%s: %v", contractx.ErrStore, conversationID, stage, err)
}
