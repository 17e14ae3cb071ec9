package dispatcher

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "deskrouter/agent/contract"
	dispatchnode "deskrouter/agent/nodes"
	"deskrouter/conversation"
)

const (
	defaultUserID         = "default-user"
	defaultHandlerTimeout = 10 * time.Second
)

type Config struct {
	DefaultUserID  string
	HandlerTimeout time.Duration
}

// Dispatcher is the sole entry point the transport layer calls per chat
// turn. One Dispatch run is one pass through the compiled graph: validate,
// ensure conversation, persist user turn, classify, invoke handler, persist
// agent turn, respond.
type Dispatcher struct {
	store      conversation.Store
	registry   contractx.Registry
	classifier contractx.Classifier

	graphRunner compose.Runnable[dispatchnode.GraphInput, dispatchnode.GraphOutput]

	userID         string
	handlerTimeout time.Duration

	now func() time.Time
}

func New(
	store conversation.Store,
	registry contractx.Registry,
	clf contractx.Classifier,
	cfg Config,
) (*Dispatcher, error) {
	if store == nil {
		return nil, errors.New("conversation store is required")
	}
	if registry == nil {
		return nil, errors.New("agent registry is required")
	}
	if clf == nil {
		return nil, errors.New("classifier is required")
	}

	userID := strings.TrimSpace(cfg.DefaultUserID)
	if userID == "" {
		userID = defaultUserID
	}
	handlerTimeout := cfg.HandlerTimeout
	if handlerTimeout <= 0 {
		handlerTimeout = defaultHandlerTimeout
	}

	d := &Dispatcher{
		store:          store,
		registry:       registry,
		classifier:     clf,
		userID:         userID,
		handlerTimeout: handlerTimeout,
		now:            time.Now,
	}

	graphRunner, err := d.compileDispatchGraph(context.Background())
	if err != nil {
		return nil, err
	}
	d.graphRunner = graphRunner

	return d, nil
}

// Dispatch processes one inbound chat message into a persisted agent reply
// and returns the reply content.
func (d *Dispatcher) Dispatch(ctx context.Context, conversationID string, message string) (string, error) {
	started := d.now()

	out, err := d.graphRunner.Invoke(ctx, dispatchnode.GraphInput{
		ConversationID: conversationID,
		Text:           message,
	})
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("conversation_id", out.ConversationID).
		Str("agent", string(out.Match.Agent)).
		Bool("fallback", out.Match.Fallback).
		Dur("elapsed", d.now().Sub(started)).
		Msg("dispatched chat turn")

	return out.Content, nil
}
