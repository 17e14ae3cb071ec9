package classifier

import (
	"errors"
	"strings"
	"unicode"

	contractx "deskrouter/agent/contract"
)

// Rule binds one agent to the keyword set that routes to it. Rules are
// evaluated in slice order: the first rule whose keyword set intersects the
// message tokens wins, so the slice IS the routing priority list.
type Rule struct {
	Agent    contractx.AgentID
	Keywords []string
}

// DefaultRules routes order questions ahead of billing questions. A message
// mentioning both "order" and "refund" therefore resolves to the order
// agent. Reorder the slice to change the policy.
var DefaultRules = []Rule{
	{
		Agent:    contractx.AgentOrder,
		Keywords: []string{"order", "orders", "delivery", "tracking", "shipment", "shipping"},
	},
	{
		Agent:    contractx.AgentBilling,
		Keywords: []string{"refund", "refunds", "invoice", "invoices", "payment", "payments", "billing", "charge", "charged"},
	},
}

// Keyword matches lower-cased message tokens against an ordered rule list.
type Keyword struct {
	rules    []Rule
	fallback contractx.AgentID
}

func New(rules []Rule, fallback contractx.AgentID) (*Keyword, error) {
	if fallback == "" {
		return nil, errors.New("fallback agent is required")
	}

	normalized := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Agent == "" {
			return nil, errors.New("rule agent is empty")
		}
		if len(rule.Keywords) == 0 {
			return nil, errors.New("rule keyword set is empty")
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				return nil, errors.New("rule keyword is blank")
			}
			keywords = append(keywords, kw)
		}
		normalized = append(normalized, Rule{Agent: rule.Agent, Keywords: keywords})
	}

	return &Keyword{
		rules:    normalized,
		fallback: fallback,
	}, nil
}

// NewDefault builds the classifier with DefaultRules and the support agent
// as catch-all.
func NewDefault() *Keyword {
	clf, err := New(DefaultRules, contractx.AgentSupport)
	if err != nil {
		panic(err)
	}
	return clf
}

func (c *Keyword) Classify(text string) contractx.AgentID {
	return c.Match(text).Agent
}

// Match reports which rule won and on which keyword. Same input always
// yields the same result.
func (c *Keyword) Match(text string) contractx.MatchResult {
	tokens := tokenize(text)

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if _, ok := tokens[kw]; ok {
				return contractx.MatchResult{Agent: rule.Agent, Keyword: kw}
			}
		}
	}
	return contractx.MatchResult{Agent: c.fallback, Fallback: true}
}

// tokenize lower-cases the text and splits on anything that is not a letter
// or digit, so "order?" and "Order." both yield the token "order".
func tokenize(text string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}
