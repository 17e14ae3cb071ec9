package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, "c1", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.GetOrCreate(ctx, "c1", "other-user")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.ID != first.ID || second.UserID != first.UserID {
		t.Fatalf("second call must return the stored conversation: %+v vs %+v", first, second)
	}

	convs, err := store.ListConversations(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("expected exactly one conversation, got %d", len(convs))
	}
}

func TestGetOrCreateConcurrent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := store.GetOrCreate(ctx, "c1", "u1"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	convs, err := store.ListConversations(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(convs) != 1 {
		t.Fatalf("concurrent GetOrCreate created %d conversations", len(convs))
	}
}

func TestAppendMessageUnknownConversation(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	_, err := store.AppendMessage(context.Background(), "missing", RoleUser, "hello")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMessagesKeepsAppendOrder(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, "c1", "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const turns = 5
	for i := 0; i < turns; i++ {
		if _, err := store.AppendMessage(ctx, "c1", RoleUser, fmt.Sprintf("question %d", i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.AppendMessage(ctx, "c1", RoleAgent, fmt.Sprintf("answer %d", i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	msgs, err := store.ListMessages(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2*turns {
		t.Fatalf("expected %d messages, got %d", 2*turns, len(msgs))
	}
	for i, msg := range msgs {
		want := RoleUser
		if i%2 == 1 {
			want = RoleAgent
		}
		if msg.Sender != want {
			t.Fatalf("message %d: expected sender %s, got %s", i, want, msg.Sender)
		}
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID <= msgs[i-1].ID {
			t.Fatalf("message ids must be strictly increasing: %d then %d", msgs[i-1].ID, msgs[i].ID)
		}
	}
}

func TestListMessagesUnknownConversation(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	msgs, err := store.ListMessages(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("expected empty slice, got %d messages", len(msgs))
	}
}

func TestDeleteCascadesToMessages(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, "c1", "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.AppendMessage(ctx, "c1", RoleUser, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(ctx, "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs, err := store.ListMessages(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("messages must be gone after delete, got %d", len(msgs))
	}

	if err := store.Delete(ctx, "c1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete must report ErrNotFound, got %v", err)
	}
}

func TestMessagesAreImmutableCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetOrCreate(ctx, "c1", "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, err := store.AppendMessage(ctx, "c1", RoleUser, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the returned value must not affect the stored message.
	msg.Content = "tampered"

	msgs, err := store.ListMessages(ctx, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msgs[0].Content != "hello" {
		t.Fatalf("stored message was mutated: %q", msgs[0].Content)
	}
}
