package contract

type AgentID string

const (
	AgentSupport AgentID = "support"
	AgentOrder   AgentID = "order"
	AgentBilling AgentID = "billing"
)

// AgentDescriptor is static agent metadata, defined at process start and
// never persisted.
type AgentDescriptor struct {
	ID           AgentID  `json:"id"`
	Capabilities []string `json:"capabilities"`
	Description  string   `json:"description"`
}

// MatchResult is the classification outcome. Fallback marks the default
// route, which is the intended catch-all for unmatched intents, not an
// error path.
type MatchResult struct {
	Agent    AgentID `json:"agent"`
	Keyword  string  `json:"keyword,omitempty"`
	Fallback bool    `json:"fallback,omitempty"`
}

type HandlerRequest struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Message        string `json:"message"`
}

type HandlerResponse struct {
	Content string `json:"content"`
}
