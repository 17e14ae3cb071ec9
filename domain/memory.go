package domain

import (
	"context"
	"sync"
)

// MemoryReader serves development without a database. Records are matched
// by user id; the latest-added record wins, mirroring the Postgres ordering.
type MemoryReader struct {
	mu       sync.RWMutex
	orders   []Order
	payments []Payment
}

func NewMemoryReader() *MemoryReader {
	return &MemoryReader{}
}

func (r *MemoryReader) AddOrder(order Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, order)
}

func (r *MemoryReader) AddPayment(payment Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, payment)
}

func (r *MemoryReader) MostRecentOrderFor(ctx context.Context, userID string) (*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, nil
}

func (r *MemoryReader) MostRecentPaymentFor(ctx context.Context, userID string) (*Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.payments) - 1; i >= 0; i-- {
		if r.payments[i].UserID == userID {
			payment := r.payments[i]
			return &payment, nil
		}
	}
	return nil, nil
}
