package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// PostgresReader reads order and payment records via bun.
type PostgresReader struct {
	db *bun.DB
}

func NewPostgresReader(db *bun.DB) (*PostgresReader, error) {
	if db == nil {
		return nil, errors.New("db handle is required")
	}
	return &PostgresReader{db: db}, nil
}

// Init creates the domain tables if they do not exist.
func (r *PostgresReader) Init(ctx context.Context) error {
	for _, model := range []any{(*Order)(nil), (*Payment)(nil)} {
		if _, err := r.db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("create domain table %T: %w", model, err)
		}
	}
	return nil
}

func (r *PostgresReader) MostRecentOrderFor(ctx context.Context, userID string) (*Order, error) {
	order := new(Order)
	err := r.db.NewSelect().
		Model(order).
		Where("o.user_id = ?", userID).
		Order("o.created_at DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("most recent order for %s: %w", userID, err)
	}
	return order, nil
}

func (r *PostgresReader) MostRecentPaymentFor(ctx context.Context, userID string) (*Payment, error) {
	payment := new(Payment)
	err := r.db.NewSelect().
		Model(payment).
		Where("p.user_id = ?", userID).
		Order("p.created_at DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("most recent payment for %s: %w", userID, err)
	}
	return payment, nil
}
