// Seeds a sample order, payment, and greeting conversation so the chat
// routes have data to answer with.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"deskrouter/conversation"
	"deskrouter/domain"
	configx "deskrouter/pkg/config"
	_ "deskrouter/pkg/logger/autoload"
)

type SeedConfig struct {
	UserID string `envconfig:"DEFAULT_USER_ID" default:"default-user"`
}

func main() {
	cfg := configx.MustNew[SeedConfig]("")
	pgCfg := configx.MustNew[conversation.PostgresConfig]("POSTGRES")

	ctx := context.Background()

	store, err := conversation.NewPostgresStore(*pgCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres store")
	}
	defer store.Close()
	if err := store.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init conversation schema")
	}

	reader, err := domain.NewPostgresReader(store.DB())
	if err != nil {
		log.Fatal().Err(err).Msg("open domain reader")
	}
	if err := reader.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("init domain schema")
	}

	now := time.Now().UTC()
	db := store.DB()

	order := &domain.Order{
		ID:           uuid.NewString(),
		UserID:       cfg.UserID,
		Status:       "shipped",
		DeliveryDate: now.AddDate(0, 0, 3),
		CreatedAt:    now,
	}
	if _, err := db.NewInsert().Model(order).Exec(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed order")
	}

	payment := &domain.Payment{
		ID:        uuid.NewString(),
		UserID:    cfg.UserID,
		Amount:    99.99,
		Status:    "completed",
		InvoiceID: "INV123",
		CreatedAt: now,
	}
	if _, err := db.NewInsert().Model(payment).Exec(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed payment")
	}

	conv, err := store.GetOrCreate(ctx, uuid.NewString(), cfg.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("seed conversation")
	}
	if _, err := store.AppendMessage(ctx, conv.ID, conversation.RoleUser, "Hello, how can you help me?"); err != nil {
		log.Fatal().Err(err).Msg("seed user message")
	}
	if _, err := store.AppendMessage(ctx, conv.ID, conversation.RoleAgent, "Support Agent: Hello! What can I do for you?"); err != nil {
		log.Fatal().Err(err).Msg("seed agent message")
	}

	log.Info().
		Str("conversation_id", conv.ID).
		Str("order_id", order.ID).
		Str("payment_id", payment.ID).
		Msg("seed data created")
}
