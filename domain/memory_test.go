package domain

import (
	"context"
	"testing"
)

func TestMemoryReaderMostRecentWins(t *testing.T) {
	t.Parallel()

	reader := NewMemoryReader()
	reader.AddOrder(Order{ID: "ord-1", UserID: "u1", Status: "delivered"})
	reader.AddOrder(Order{ID: "ord-2", UserID: "u1", Status: "shipped"})
	reader.AddOrder(Order{ID: "ord-3", UserID: "u2", Status: "processing"})

	order, err := reader.MostRecentOrderFor(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order == nil || order.ID != "ord-2" {
		t.Fatalf("expected the latest order for u1, got %+v", order)
	}
}

func TestMemoryReaderScopesByUser(t *testing.T) {
	t.Parallel()

	reader := NewMemoryReader()
	reader.AddPayment(Payment{ID: "pay-1", UserID: "u1", Amount: 10, Status: "completed"})

	payment, err := reader.MostRecentPaymentFor(context.Background(), "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment != nil {
		t.Fatalf("expected no payment for u2, got %+v", payment)
	}
}

func TestMemoryReaderEmpty(t *testing.T) {
	t.Parallel()

	reader := NewMemoryReader()

	order, err := reader.MostRecentOrderFor(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %+v", order)
	}
}
