package conversation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type PostgresConfig struct {
	DSN          string        `split_words:"true"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
	MaxOpenConns int           `split_words:"true" default:"8"`
}

// PostgresStore persists conversations and messages in Postgres via bun.
// Conversation creation relies on the primary-key constraint: insert with
// ON CONFLICT DO NOTHING, then fetch, so concurrent GetOrCreate calls for
// one id can never produce duplicates.
type PostgresStore struct {
	db  *bun.DB
	now func() time.Time
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithDialTimeout(dialTimeout),
	))
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return &PostgresStore{
		db:  bun.NewDB(sqldb, pgdialect.New()),
		now: time.Now,
	}, nil
}

// DB exposes the underlying handle for sibling read access (domain records)
// and for the seeder.
func (s *PostgresStore) DB() *bun.DB {
	return s.db
}

// Init creates the conversation tables if they do not exist.
func (s *PostgresStore) Init(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*Conversation)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create conversations table: %w", err)
	}

	if _, err := s.db.NewCreateTable().
		Model((*Message)(nil)).
		IfNotExists().
		ForeignKey(`("conversation_id") REFERENCES "conversations" ("id") ON DELETE CASCADE`).
		Exec(ctx); err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) GetOrCreate(ctx context.Context, id string, defaultUserID string) (*Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("conversation id is empty")
	}

	conv := &Conversation{
		ID:        id,
		UserID:    defaultUserID,
		CreatedAt: s.now().UTC(),
	}
	if _, err := s.db.NewInsert().
		Model(conv).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("create conversation %s: %w", id, err)
	}

	// Always re-read: the insert may have lost the race to a concurrent
	// caller, in which case the stored row wins.
	stored := new(Conversation)
	if err := s.db.NewSelect().
		Model(stored).
		Where("c.id = ?", id).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("fetch conversation %s: %w", id, err)
	}
	return stored, nil
}

func (s *PostgresStore) AppendMessage(ctx context.Context, conversationID string, sender Role, content string) (*Message, error) {
	msg := &Message{
		ConversationID: conversationID,
		Sender:         sender,
		Content:        content,
		CreatedAt:      s.now().UTC(),
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*Conversation)(nil)).
			Where("c.id = ?", conversationID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("check conversation %s: %w", conversationID, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrNotFound, conversationID)
		}

		if _, err := tx.NewInsert().Model(msg).Exec(ctx); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *PostgresStore) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	msgs := make([]Message, 0)
	if err := s.db.NewSelect().
		Model(&msgs).
		Where("m.conversation_id = ?", conversationID).
		Order("m.created_at ASC", "m.id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("list messages for %s: %w", conversationID, err)
	}
	return msgs, nil
}

func (s *PostgresStore) ListConversations(ctx context.Context) ([]Conversation, error) {
	convs := make([]Conversation, 0)
	if err := s.db.NewSelect().
		Model(&convs).
		Order("c.created_at ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return convs, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*Message)(nil)).
			Where("m.conversation_id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete messages for %s: %w", id, err)
		}

		res, err := tx.NewDelete().
			Model((*Conversation)(nil)).
			Where("c.id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete conversation %s: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil
	})
}
