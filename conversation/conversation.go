package conversation

import (
	"errors"
	"time"

	"github.com/uptrace/bun"
)

var ErrNotFound = errors.New("conversation not found")

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Conversation is a persisted thread of messages under one identifier.
// It is created lazily on the first message referencing an unknown id and
// never updated afterwards except through new messages.
type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:c"`

	ID        string    `bun:"id,pk" json:"id"`
	UserID    string    `bun:"user_id,notnull" json:"user_id"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
}

// Message is immutable once stored. Messages of a conversation are totally
// ordered by timestamp, with the autoincrement id breaking ties in
// insertion order.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	ConversationID string    `bun:"conversation_id,notnull" json:"conversation_id"`
	Sender         Role      `bun:"sender,notnull" json:"sender"`
	Content        string    `bun:"content,notnull" json:"content"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"created_at"`
}
