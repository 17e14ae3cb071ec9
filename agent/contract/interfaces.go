package contract

import "context"

// Handler produces the agent reply for one conversation turn. Handlers are
// read-only with respect to domain records.
type Handler interface {
	Handle(ctx context.Context, req HandlerRequest) (HandlerResponse, error)
}

// Registry exposes the static agent set. Unknown ids are not an error:
// CapabilitiesOf returns an empty slice and HandlerFor reports ok=false.
type Registry interface {
	ListAgents() []AgentID
	CapabilitiesOf(id AgentID) []string
	HandlerFor(id AgentID) (Handler, bool)
}

// Classifier maps message text to the agent that should handle it. It is
// pure and deterministic, performs no I/O, and cannot fail.
type Classifier interface {
	Classify(text string) AgentID
	Match(text string) MatchResult
}
