package classifier

import (
	"testing"

	contractx "deskrouter/agent/contract"
)

func TestClassifyRoutesByKeyword(t *testing.T) {
	t.Parallel()

	clf := NewDefault()

	cases := []struct {
		name string
		text string
		want contractx.AgentID
	}{
		{name: "order question", text: "Where is my order?", want: contractx.AgentOrder},
		{name: "refund request", text: "I need a refund", want: contractx.AgentBilling},
		{name: "invoice request", text: "Please send the invoice", want: contractx.AgentBilling},
		{name: "greeting", text: "hi", want: contractx.AgentSupport},
		{name: "upper case", text: "ORDER STATUS PLEASE", want: contractx.AgentOrder},
		{name: "punctuation stripped", text: "my order, please!", want: contractx.AgentOrder},
		{name: "substring is not a token", text: "I want to preorder something", want: contractx.AgentSupport},
		{name: "empty", text: "", want: contractx.AgentSupport},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := clf.Classify(tc.text); got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestClassifyPriorityOrderBeatsBilling(t *testing.T) {
	t.Parallel()

	clf := NewDefault()

	// Both rule sets match; the order rule is listed first and must win.
	got := clf.Match("I want a refund for my order")
	if got.Agent != contractx.AgentOrder {
		t.Fatalf("expected order agent, got %s", got.Agent)
	}
	if got.Keyword != "order" {
		t.Fatalf("expected keyword order, got %q", got.Keyword)
	}
	if got.Fallback {
		t.Fatal("matched result must not be marked fallback")
	}
}

func TestMatchFallback(t *testing.T) {
	t.Parallel()

	clf := NewDefault()

	got := clf.Match("hello there")
	if got.Agent != contractx.AgentSupport {
		t.Fatalf("expected support fallback, got %s", got.Agent)
	}
	if !got.Fallback {
		t.Fatal("expected fallback flag to be set")
	}
	if got.Keyword != "" {
		t.Fatalf("fallback must not carry a keyword, got %q", got.Keyword)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()

	clf := NewDefault()

	const text = "refund my payment and cancel the delivery"
	first := clf.Match(text)
	for i := 0; i < 50; i++ {
		if got := clf.Match(text); got != first {
			t.Fatalf("classification changed between calls: %+v vs %+v", first, got)
		}
	}
}

func TestCustomRuleOrderIsRespected(t *testing.T) {
	t.Parallel()

	reversed := []Rule{
		{Agent: contractx.AgentBilling, Keywords: []string{"refund", "invoice"}},
		{Agent: contractx.AgentOrder, Keywords: []string{"order"}},
	}
	clf, err := New(reversed, contractx.AgentSupport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := clf.Classify("refund for my order"); got != contractx.AgentBilling {
		t.Fatalf("expected billing to win with reversed rules, got %s", got)
	}
}

func TestNewRejectsInvalidRules(t *testing.T) {
	t.Parallel()

	if _, err := New([]Rule{{Agent: contractx.AgentOrder}}, contractx.AgentSupport); err == nil {
		t.Fatal("expected error for empty keyword set")
	}
	if _, err := New([]Rule{{Keywords: []string{"order"}}}, contractx.AgentSupport); err == nil {
		t.Fatal("expected error for empty agent")
	}
	if _, err := New(DefaultRules, ""); err == nil {
		t.Fatal("expected error for empty fallback")
	}
	if _, err := New([]Rule{{Agent: contractx.AgentOrder, Keywords: []string{"  "}}}, contractx.AgentSupport); err == nil {
		t.Fatal("expected error for blank keyword")
	}
}
