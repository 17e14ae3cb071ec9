package dispatchnode

import (
	"fmt"

	contractx "deskrouter/agent/contract"
)

// ClassifyMessage resolves the agent for this turn. Classification is pure
// and cannot fail; the fallback route is a normal outcome.
func ClassifyMessage(in *GraphState, clf contractx.Classifier) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrInvalidInput)
	}

	in.Match = clf.Match(in.Text)
	in.Stage = StageClassified
	return in, nil
}
