package conversation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps conversations and messages in process memory. It serves
// development without a database and the test suites. A single mutex is the
// serialization point, so GetOrCreate stays idempotent under concurrency and
// message order matches append order.
type MemoryStore struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	messages      map[string][]Message
	nextMessageID int64
	now           func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		conversations: make(map[string]*Conversation),
		messages:      make(map[string][]Message),
		now:           time.Now,
	}
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, id string, defaultUserID string) (*Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("conversation id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.conversations[id]; ok {
		cloned := *existing
		return &cloned, nil
	}

	conv := &Conversation{
		ID:        id,
		UserID:    defaultUserID,
		CreatedAt: s.now().UTC(),
	}
	s.conversations[id] = conv
	cloned := *conv
	return &cloned, nil
}

func (s *MemoryStore) AppendMessage(ctx context.Context, conversationID string, sender Role, content string) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[conversationID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, conversationID)
	}

	s.nextMessageID++
	msg := Message{
		ID:             s.nextMessageID,
		ConversationID: conversationID,
		Sender:         sender,
		Content:        content,
		CreatedAt:      s.now().UTC(),
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)

	cloned := msg
	return &cloned, nil
}

func (s *MemoryStore) ListMessages(ctx context.Context, conversationID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.messages[conversationID]
	msgs := make([]Message, len(stored))
	copy(msgs, stored)

	// Appends already arrive in insertion order; sort keeps the timestamp
	// contract when clocks are injected out of order in tests.
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].CreatedAt.Equal(msgs[j].CreatedAt) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (s *MemoryStore) ListConversations(ctx context.Context) ([]Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	convs := make([]Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		convs = append(convs, *conv)
	}
	sort.Slice(convs, func(i, j int) bool {
		if convs[i].CreatedAt.Equal(convs[j].CreatedAt) {
			return convs[i].ID < convs[j].ID
		}
		return convs[i].CreatedAt.Before(convs[j].CreatedAt)
	})
	return convs, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.conversations, id)
	delete(s.messages, id)
	return nil
}
