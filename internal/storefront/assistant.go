package storefront

import (
	"context"

	"github.com/arogyasagar/storefront/internal/chat"
	"github.com/arogyasagar/storefront/internal/model"
)

// SetResponder attaches the assistant. It is separate from New because the
// assistant reads the catalog through the storefront.
func (s *Storefront) SetResponder(r chat.Responder) {
	s.chat.SetResponder(r)
}

// SendChat relays text to the assistant. It does not hold the storefront
// lock while waiting, so the assistant's tools can read the catalog.
func (s *Storefront) SendChat(ctx context.Context, text string) (model.ChatMessage, error) {
	return s.chat.Send(ctx, text)
}

func (s *Storefront) ChatMessages() []model.ChatMessage {
	return s.chat.Messages()
}

func (s *Storefront) AssistantTyping() bool {
	return s.chat.Typing()
}
