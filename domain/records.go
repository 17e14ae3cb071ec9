package domain

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Order and Payment are opaque to the router. Agent handlers read them
// through Reader and never mutate them.

type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID           string    `bun:"id,pk" json:"id"`
	UserID       string    `bun:"user_id,notnull" json:"user_id"`
	Status       string    `bun:"status,notnull" json:"status"`
	DeliveryDate time.Time `bun:"delivery_date,nullzero" json:"delivery_date"`
	CreatedAt    time.Time `bun:"created_at,notnull" json:"created_at"`
}

type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:p"`

	ID        string    `bun:"id,pk" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"user_id"`
	Amount    float64   `bun:"amount,notnull" json:"amount"`
	Status    string    `bun:"status,notnull" json:"status"`
	InvoiceID string    `bun:"invoice_id" json:"invoice_id"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}

// Reader is the read-only lookup surface handlers depend on. Absence is not
// an error: a missing record comes back as (nil, nil) and callers must
// branch on it explicitly.
type Reader interface {
	MostRecentOrderFor(ctx context.Context, userID string) (*Order, error)
	MostRecentPaymentFor(ctx context.Context, userID string) (*Payment, error)
}
