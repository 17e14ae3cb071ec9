package handlers

import (
	"errors"

	contractx "deskrouter/agent/contract"
	domainx "deskrouter/domain"
)

// descriptors is the static agent set in presentation order.
var descriptors = []contractx.AgentDescriptor{
	{
		ID:           contractx.AgentSupport,
		Capabilities: []string{"FAQs", "Troubleshooting", "Conversation history"},
		Description:  "General help and the default route for unmatched intents.",
	},
	{
		ID:           contractx.AgentOrder,
		Capabilities: []string{"Order status", "Tracking", "Cancellation"},
		Description:  "Answers questions about the customer's orders.",
	},
	{
		ID:           contractx.AgentBilling,
		Capabilities: []string{"Invoices", "Refunds", "Payments"},
		Description:  "Answers questions about payments and invoices.",
	},
}

type registryImpl struct {
	agents   []contractx.AgentID
	byID     map[contractx.AgentID]contractx.AgentDescriptor
	handlers map[contractx.AgentID]contractx.Handler
}

// NewRegistry builds the static registry with one handler per agent. The
// order and billing handlers read domain records through reader.
func NewRegistry(reader domainx.Reader) (contractx.Registry, error) {
	if reader == nil {
		return nil, errors.New("domain reader is required")
	}

	handlers := map[contractx.AgentID]contractx.Handler{
		contractx.AgentSupport: &supportHandler{capabilities: descriptors[0].Capabilities},
		contractx.AgentOrder:   &orderHandler{reader: reader},
		contractx.AgentBilling: &billingHandler{reader: reader},
	}

	agents := make([]contractx.AgentID, 0, len(descriptors))
	byID := make(map[contractx.AgentID]contractx.AgentDescriptor, len(descriptors))
	for _, d := range descriptors {
		agents = append(agents, d.ID)
		byID[d.ID] = d
	}

	return &registryImpl{
		agents:   agents,
		byID:     byID,
		handlers: handlers,
	}, nil
}

func (r *registryImpl) ListAgents() []contractx.AgentID {
	out := make([]contractx.AgentID, len(r.agents))
	copy(out, r.agents)
	return out
}

func (r *registryImpl) CapabilitiesOf(id contractx.AgentID) []string {
	d, ok := r.byID[id]
	if !ok {
		return []string{}
	}
	out := make([]string, len(d.Capabilities))
	copy(out, d.Capabilities)
	return out
}

func (r *registryImpl) HandlerFor(id contractx.AgentID) (contractx.Handler, bool) {
	h, ok := r.handlers[id]
	return h, ok
}
