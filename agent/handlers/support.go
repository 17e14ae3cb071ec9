package handlers

import (
	"context"
	"fmt"
	"strings"

	contractx "deskrouter/agent/contract"
)

// supportHandler is the catch-all agent. It needs no domain data and never
// fails, so the dispatcher's fallback route is always safe.
type supportHandler struct {
	capabilities []string
}

func (h *supportHandler) Handle(ctx context.Context, req contractx.HandlerRequest) (contractx.HandlerResponse, error) {
	return contractx.HandlerResponse{
		Content: fmt.Sprintf(
			"Support Agent: Hello! I can help with %s. What can I do for you?",
			strings.Join(h.capabilities, ", "),
		),
	}, nil
}
