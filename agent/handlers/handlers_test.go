package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	contractx "deskrouter/agent/contract"
	domainx "deskrouter/domain"
)

type fakeReader struct {
	order      *domainx.Order
	orderErr   error
	payment    *domainx.Payment
	paymentErr error
}

func (f *fakeReader) MostRecentOrderFor(ctx context.Context, userID string) (*domainx.Order, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.order, nil
}

func (f *fakeReader) MostRecentPaymentFor(ctx context.Context, userID string) (*domainx.Payment, error) {
	if f.paymentErr != nil {
		return nil, f.paymentErr
	}
	return f.payment, nil
}

func handlerFor(t *testing.T, reader domainx.Reader, id contractx.AgentID) contractx.Handler {
	t.Helper()

	registry, err := NewRegistry(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, ok := registry.HandlerFor(id)
	if !ok {
		t.Fatalf("no handler for %s", id)
	}
	return h
}

func TestOrderHandlerWithOrder(t *testing.T) {
	t.Parallel()

	h := handlerFor(t, &fakeReader{
		order: &domainx.Order{ID: "ord-1", UserID: "u1", Status: "shipped"},
	}, contractx.AgentOrder)

	resp, err := h.Handle(context.Background(), contractx.HandlerRequest{ConversationID: "c1", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Content, "ord-1") || !strings.Contains(resp.Content, "shipped") {
		t.Fatalf("reply must reference order id and status: %q", resp.Content)
	}
}

func TestOrderHandlerWithoutOrder(t *testing.T) {
	t.Parallel()

	h := handlerFor(t, &fakeReader{}, contractx.AgentOrder)

	resp, err := h.Handle(context.Background(), contractx.HandlerRequest{ConversationID: "c1", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(strings.ToLower(resp.Content), "find any orders") {
		t.Fatalf("reply must state that no order was found: %q", resp.Content)
	}
	for _, artifact := range []string{"<nil>", "undefined", "%!"} {
		if strings.Contains(resp.Content, artifact) {
			t.Fatalf("reply contains formatting artifact %q: %q", artifact, resp.Content)
		}
	}
}

func TestOrderHandlerPropagatesReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("connection refused")
	h := handlerFor(t, &fakeReader{orderErr: readErr}, contractx.AgentOrder)

	if _, err := h.Handle(context.Background(), contractx.HandlerRequest{UserID: "u1"}); !errors.Is(err, readErr) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}

func TestBillingHandlerWithPayment(t *testing.T) {
	t.Parallel()

	h := handlerFor(t, &fakeReader{
		payment: &domainx.Payment{ID: "pay-1", UserID: "u1", Amount: 99.99, Status: "completed"},
	}, contractx.AgentBilling)

	resp, err := h.Handle(context.Background(), contractx.HandlerRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Content, "$99.99") || !strings.Contains(resp.Content, "completed") {
		t.Fatalf("reply must reference amount and status: %q", resp.Content)
	}
}

func TestBillingHandlerWithoutPayment(t *testing.T) {
	t.Parallel()

	h := handlerFor(t, &fakeReader{}, contractx.AgentBilling)

	resp, err := h.Handle(context.Background(), contractx.HandlerRequest{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(strings.ToLower(resp.Content), "no payment on file") {
		t.Fatalf("reply must state that no payment is on file: %q", resp.Content)
	}
}

func TestSupportHandlerNeverFails(t *testing.T) {
	t.Parallel()

	// The support handler must not depend on domain data at all.
	h := handlerFor(t, &fakeReader{
		orderErr:   errors.New("domain store down"),
		paymentErr: errors.New("domain store down"),
	}, contractx.AgentSupport)

	resp, err := h.Handle(context.Background(), contractx.HandlerRequest{UserID: "u1", Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content == "" {
		t.Fatal("support reply must not be empty")
	}
}
