package dispatchnode

import (
	"fmt"

	contractx "deskrouter/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrInvalidInput)
	}

	in.Stage = StageResponded
	return GraphOutput{
		ConversationID: in.ConversationID,
		Content:        in.Reply,
		Match:          in.Match,
	}, nil
}
