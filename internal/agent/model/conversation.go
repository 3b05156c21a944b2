package model

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// ConversationRepository stores the assistant's model-side context, keyed by
// the shopper identity ("guest" when logged out).
type ConversationRepository interface {
	AddMessage(ctx context.Context, conversationID string, message *schema.Message) error
	LoadHistory(ctx context.Context, conversationID string) (*ConversationHistory, error)
	ClearHistory(ctx context.Context, conversationID string) error
	GetMessageCount(ctx context.Context, conversationID string) (int, error)
}

type ConversationHistory struct {
	ConversationID string
	Messages       []*schema.Message
}

// Recent returns at most maxTurns trailing messages, advanced past any
// leading non-user message so the window opens on a shopper turn.
// maxTurns <= 0 keeps everything.
func (h *ConversationHistory) Recent(maxTurns int) []*schema.Message {
	if h == nil {
		return nil
	}
	msgs := h.Messages
	if maxTurns > 0 && len(msgs) > maxTurns {
		msgs = msgs[len(msgs)-maxTurns:]
	}
	for len(msgs) > 0 && msgs[0] != nil && msgs[0].Role != schema.User {
		msgs = msgs[1:]
	}
	return msgs
}
